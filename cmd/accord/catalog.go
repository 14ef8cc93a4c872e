package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ahrav/go-accord/internal/dataset"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Store a dataset in the catalog under a name",
	Long: `Validate a dataset file and store it in the catalog. Re-importing a
name replaces its payload but keeps its record id.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export --name <name>",
	Short: "Write a stored dataset to a file or stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the datasets in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var deleteCmd = &cobra.Command{
	Use:   "delete --name <name>",
	Short: "Remove a dataset from the catalog",
	Args:  cobra.NoArgs,
	RunE:  runDelete,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the bundled sample corpora into the catalog",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

var (
	importName   string
	exportName   string
	exportOutput string
	deleteName   string
	listJSON     bool
)

func init() {
	rootCmd.AddCommand(importCmd, exportCmd, listCmd, deleteCmd, seedCmd)

	importCmd.Flags().StringVar(&importName, "name", "",
		"catalog name (default: file basename without extension)")

	exportCmd.Flags().StringVar(&exportName, "name", "", "dataset to export")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	_ = exportCmd.MarkFlagRequired("name")

	deleteCmd.Flags().StringVar(&deleteName, "name", "", "dataset to delete")
	_ = deleteCmd.MarkFlagRequired("name")

	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	ds, err := dataset.Decode(f)
	if err != nil {
		return err
	}

	name := importName
	if name == "" {
		base := filepath.Base(args[0])
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	s, err := openCatalog()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	id, err := s.Put(cmd.Context(), name, ds)
	if err != nil {
		return err
	}

	logger.Info("dataset imported", "name", name, "id", id, "items", len(ds))
	fmt.Printf("imported %q (%d items)\n", name, len(ds))
	return nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	s, err := openCatalog()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	ds, err := s.Get(cmd.Context(), exportName)
	if err != nil {
		return err
	}

	w := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}
	return dataset.Encode(w, ds)
}

func runList(cmd *cobra.Command, _ []string) error {
	s, err := openCatalog()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	records, err := s.List(cmd.Context())
	if err != nil {
		return err
	}

	if listJSON {
		return outputJSON(records)
	}
	if len(records) == 0 {
		fmt.Println("catalog is empty")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tID\tCREATED\tUPDATED")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Name, r.ID, r.CreatedAt, r.UpdatedAt)
	}
	return w.Flush()
}

func runDelete(cmd *cobra.Command, _ []string) error {
	s, err := openCatalog()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.Delete(cmd.Context(), deleteName); err != nil {
		return err
	}

	logger.Info("dataset deleted", "name", deleteName)
	fmt.Printf("deleted %q\n", deleteName)
	return nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	s, err := openCatalog()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	samples := dataset.Samples()
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		id, err := s.Put(cmd.Context(), name, samples[name])
		if err != nil {
			return err
		}
		logger.Info("sample seeded", "name", name, "id", id)
		fmt.Printf("seeded %q (%d items)\n", name, len(samples[name]))
	}
	return nil
}
