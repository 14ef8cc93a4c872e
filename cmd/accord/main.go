// Command accord measures inter-annotator agreement on text segmentation.
// It computes a boundary-aware Fleiss Pi coefficient over datasets held
// in JSON files or in a local catalog.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ahrav/go-accord/internal/domain"
	"github.com/ahrav/go-accord/internal/store"
)

// Version information - set by goreleaser at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes distinguish the error families scripts care about.
const (
	exitFailure    = 1
	exitInvalid    = 2
	exitDegenerate = 3
	exitNotFound   = 4
)

func main() {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)

	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrCoderCount),
		errors.Is(err, domain.ErrMassMismatch),
		errors.Is(err, domain.ErrMassValue):
		return exitInvalid
	case errors.Is(err, domain.ErrDegenerateAgreement):
		return exitDegenerate
	case errors.Is(err, store.ErrNotFound):
		return exitNotFound
	default:
		return exitFailure
	}
}
