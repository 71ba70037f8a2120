package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	deckgen "github.com/alnah/go-deckgen"
	"github.com/alnah/go-deckgen/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "generic", err: errors.New("boom"), want: ExitGeneral},
		{name: "no inputs", err: deckgen.ErrNoInputs, want: ExitIO},
		{name: "no input flag", err: ErrNoInput, want: ExitIO},
		{name: "missing input file", err: ErrMissingInput, want: ExitIO},
		{name: "file not found", err: os.ErrNotExist, want: ExitIO},
		{name: "render failure", err: deckgen.ErrRenderDeck, want: ExitIO},
		{name: "preview failure", err: deckgen.ErrWritePreview, want: ExitIO},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse", err: config.ErrConfigParse, want: ExitUsage},
		{name: "invalid style", err: ErrInvalidStyle, want: ExitUsage},
		{name: "missing api key", err: ErrMissingAPIKey, want: ExitUsage},
		{name: "empty output", err: deckgen.ErrEmptyOutput, want: ExitUsage},
		{
			name: "wrapped sentinel",
			err:  fmt.Errorf("loading config: %w", config.ErrConfigNotFound),
			want: ExitUsage,
		},
		{
			name: "deeply wrapped sentinel",
			err:  fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", deckgen.ErrNoInputs)),
			want: ExitIO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
