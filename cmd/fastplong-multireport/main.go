package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/omics-tools/fastplong-multireport/internal/discovery"
	"github.com/omics-tools/fastplong-multireport/internal/loader"
)

// Exit codes for the different failure modes
const (
	ExitSuccess = 0 // report generated
	ExitNoInput = 1 // no matching files, or none parsed
	ExitError   = 2 // configuration or runtime error
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps error types to process exit codes.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var notFound *discovery.NotFoundError
	var noValid *loader.NoValidReportsError
	if errors.As(err, &notFound) || errors.As(err, &noValid) {
		return ExitNoInput
	}

	return ExitError
}
