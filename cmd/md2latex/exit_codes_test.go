package main

// Notes:
// - exitCodeFor: we test the sentinel errors of the library, config and CLI,
//   plus wrapped and joined errors to verify the errors.Is() chain.
// - Exit code constants: we verify Unix conventions (0=success, 1=general, 2=usage)
//   and custom codes are below 126.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	md2latex "github.com/alnah/go-md2latex"
	"github.com/alnah/go-md2latex/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// Network errors (exit 4)
		{"image unavailable", md2latex.ErrImageUnavailable, ExitNetwork},
		{"image fetch", md2latex.ErrImageFetch, ExitNetwork},
		{"wrapped image fetch", fmt.Errorf("converting: %w", md2latex.ErrImageFetch), ExitNetwork},
		{"batch with network failure", &batchError{failed: []error{md2latex.ErrImageUnavailable}}, ExitNetwork},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid value", config.ErrInvalidValue, ExitUsage},
		{"empty markdown", md2latex.ErrEmptyMarkdown, ExitUsage},
		{"invalid asset path", md2latex.ErrInvalidAssetPath, ExitUsage},
		{"template parse", md2latex.ErrTemplateParse, ExitUsage},
		{"glossary parse", md2latex.ErrGlossaryParse, ExitUsage},
		{"csv", md2latex.ErrCSV, ExitUsage},
		{"date format", md2latex.ErrInvalidDateFormat, ExitUsage},
		{"invalid extension", ErrInvalidExtension, ExitUsage},
		{"invalid workers", ErrInvalidWorkerCount, ExitUsage},
		{"usage", ErrUsage, ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"canceled", context.Canceled, ExitGeneral},
		{"malformed island", md2latex.ErrMalformedIsland, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Errorf("standard exit codes changed: %d %d %d", ExitSuccess, ExitGeneral, ExitUsage)
	}
	for _, code := range []int{ExitIO, ExitNetwork} {
		if code >= 126 {
			t.Errorf("custom exit code %d must be below 126", code)
		}
	}
}
