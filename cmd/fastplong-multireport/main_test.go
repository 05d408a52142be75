package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/omics-tools/fastplong-multireport/internal/discovery"
	"github.com/omics-tools/fastplong-multireport/internal/loader"
	"github.com/stretchr/testify/assert"
)

func TestExitCodeMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, ExitSuccess},
		{"not found", &discovery.NotFoundError{Root: "/data"}, ExitNoInput},
		{"no valid reports", &loader.NoValidReportsError{Failures: 3}, ExitNoInput},
		{"wrapped not found", fmt.Errorf("scan: %w", &discovery.NotFoundError{Root: "/data"}), ExitNoInput},
		{"other error", errors.New("boom"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
