package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ahrav/go-accord/internal/dataset"
	"github.com/ahrav/go-accord/internal/domain"
	"github.com/ahrav/go-accord/internal/logging"
	"github.com/ahrav/go-accord/internal/store"
)

var (
	cfgFile   string
	dbPath    string
	logLevel  string
	logFormat string

	// logger is replaced by initConfig before any subcommand runs.
	logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "accord",
	Short: "Segmentation agreement calculator",
	Long: `accord measures how well multiple annotators agree on segmenting the
same texts. It computes a boundary-aware Fleiss Pi coefficient that
credits nearly-aligned boundaries instead of treating them as full
disagreement, using exact arithmetic end to end.

Datasets are JSON files in the interchange format, or entries imported
into a local catalog and addressed by --name. Pass "-" as the file
argument to read from stdin.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return initConfig()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: $HOME/.accord.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "",
		"dataset catalog path (default: $HOME/.accord/accord.db)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "auto",
		"log format (auto, text, json)")

	// Bind flags to viper (errors are nil when flag exists)
	_ = viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".accord")
		viper.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("ACCORD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	logger = logging.New(logging.Config{
		Level:  viper.GetString("log.level"),
		Format: viper.GetString("log.format"),
	})
	return nil
}

// catalogPath resolves the SQLite catalog location, creating the default
// data directory on first use.
func catalogPath() (string, error) {
	if p := viper.GetString("db"); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	dir := filepath.Join(home, ".accord")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("creating data dir: %w", err)
	}
	return filepath.Join(dir, "accord.db"), nil
}

func openCatalog() (*store.Store, error) {
	path, err := catalogPath()
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}

// loadDataset resolves the dataset a command operates on: a file path
// (or "-" for stdin), or a catalog entry via name. Exactly one source
// must be given.
func loadDataset(ctx context.Context, file, name string) (domain.Dataset, error) {
	switch {
	case file != "" && name != "":
		return nil, fmt.Errorf("pass a dataset file or --name, not both")
	case name != "":
		s, err := openCatalog()
		if err != nil {
			return nil, err
		}
		defer func() { _ = s.Close() }()
		return s.Get(ctx, name)
	case file == "-":
		return dataset.Decode(os.Stdin)
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("opening dataset: %w", err)
		}
		defer func() { _ = f.Close() }()
		return dataset.Decode(f)
	default:
		return nil, fmt.Errorf("pass a dataset file or --name")
	}
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
