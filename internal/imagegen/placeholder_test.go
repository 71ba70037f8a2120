package imagegen

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{
			name:   "alphanumerics kept",
			prompt: "Visual for Alpha",
			want:   "Visual_for_Alpha.png",
		},
		{
			name:   "punctuation replaced",
			prompt: "Q3: revenue / units?",
			want:   "Q3__revenue___units_.png",
		},
		{
			name:   "empty falls back",
			prompt: "",
			want:   "image.png",
		},
		{
			name:   "long prompt capped",
			prompt: strings.Repeat("a", 100),
			want:   strings.Repeat("a", maxFilenameRunes) + ".png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeFilename(tt.prompt); got != tt.want {
				t.Errorf("SafeFilename(%q) = %q, want %q", tt.prompt, got, tt.want)
			}
		})
	}
}

func TestWritePlaceholder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "placeholder.png")

	if err := WritePlaceholder(path); err != nil {
		t.Fatalf("WritePlaceholder() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("placeholder is not a valid PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != placeholderWidth || bounds.Dy() != placeholderHeight {
		t.Errorf("placeholder size = %dx%d, want %dx%d",
			bounds.Dx(), bounds.Dy(), placeholderWidth, placeholderHeight)
	}
}

func TestWritePlaceholder_BadDir(t *testing.T) {
	if err := WritePlaceholder("/nonexistent/dir/p.png"); err == nil {
		t.Error("expected error for unwritable path")
	}
}
