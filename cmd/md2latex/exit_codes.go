package main

import (
	"errors"
	"os"

	md2latex "github.com/alnah/go-md2latex"
	"github.com/alnah/go-md2latex/internal/config"
)

// Exit codes for the md2latex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitNetwork = 4 // Remote image errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Network errors (exit 4)
	if errors.Is(err, md2latex.ErrImageFetch) ||
		errors.Is(err, md2latex.ErrImageUnavailable) {
		return ExitNetwork
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, md2latex.ErrEmptyMarkdown) ||
		errors.Is(err, md2latex.ErrInvalidAssetPath) ||
		errors.Is(err, md2latex.ErrTemplateNotFound) ||
		errors.Is(err, md2latex.ErrTemplateParse) ||
		errors.Is(err, md2latex.ErrGlossaryParse) ||
		errors.Is(err, md2latex.ErrCSV) ||
		errors.Is(err, md2latex.ErrInvalidDateFormat) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	return ExitGeneral
}
