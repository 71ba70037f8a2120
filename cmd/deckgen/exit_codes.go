package main

import (
	"errors"
	"os"

	deckgen "github.com/alnah/go-deckgen"
	"github.com/alnah/go-deckgen/internal/config"
)

// Exit codes for the deckgen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful generation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, write failures
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, deckgen.ErrNoInputs) ||
		errors.Is(err, deckgen.ErrCreateOutput) ||
		errors.Is(err, deckgen.ErrRenderDeck) ||
		errors.Is(err, deckgen.ErrWritePreview) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrMissingInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, deckgen.ErrEmptyOutput) ||
		errors.Is(err, deckgen.ErrNoDrafts) ||
		errors.Is(err, ErrInvalidStyle) ||
		errors.Is(err, ErrMissingAPIKey) {
		return ExitUsage
	}

	return ExitGeneral
}
