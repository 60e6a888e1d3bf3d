package main

import (
	"errors"
	"os"

	md2note "github.com/alnah/go-md2note"
	"github.com/alnah/go-md2note/internal/config"
)

// Exit codes for the md2note CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // All files converted
	ExitGeneral = 1 // Partial failure or unexpected error
	ExitUsage   = 2 // Invalid flags or config
	ExitIO      = 3 // Input path missing, file unreadable or unwritable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is, so callers must wrap with fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteNote) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidWorkers) ||
		errors.Is(err, config.ErrEmptyExclude) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, md2note.ErrEmptyMarkdown) {
		return ExitUsage
	}

	return ExitGeneral
}
