package deckgen

import "errors"

// Sentinel errors for library operations.
var (
	ErrNoInputs     = errors.New("no input files resolved")
	ErrEmptyOutput  = errors.New("output path cannot be empty")
	ErrCreateOutput = errors.New("failed to create output directory")
	ErrRenderDeck   = errors.New("deck rendering failed")
	ErrWritePreview = errors.New("failed to write markdown preview")
	ErrNoDrafts     = errors.New("no slide drafts to assemble")
)
