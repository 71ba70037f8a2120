package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTextExcerpt(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		maxRunes int
		want     string
	}{
		{
			name:     "first three non-blank lines joined",
			content:  "one\n\ntwo\nthree\nfour",
			maxRunes: 100,
			want:     "one two three",
		},
		{
			name:     "whitespace trimmed per line",
			content:  "  padded  \nsecond",
			maxRunes: 100,
			want:     "padded second",
		},
		{
			name:     "capped at max runes",
			content:  strings.Repeat("a", 50),
			maxRunes: 10,
			want:     strings.Repeat("a", 10),
		},
		{
			name:     "empty file",
			content:  "\n\n\n",
			maxRunes: 100,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "input.txt", tt.content)
			got, err := TextExcerpt(path, tt.maxRunes)
			if err != nil {
				t.Fatalf("TextExcerpt() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("TextExcerpt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextExcerpt_MissingFile(t *testing.T) {
	if _, err := TextExcerpt("/nonexistent/input.txt", 100); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestMarkdownExcerpt(t *testing.T) {
	source := "# Roadmap\n\nShip the **beta** release.\n\n- item one\n"
	path := writeFile(t, "notes.md", source)

	got, err := MarkdownExcerpt(path, 200)
	if err != nil {
		t.Fatalf("MarkdownExcerpt() error = %v", err)
	}

	if !strings.Contains(got, "Roadmap") {
		t.Errorf("excerpt missing heading text: %q", got)
	}
	if !strings.Contains(got, "Ship the beta release.") {
		t.Errorf("excerpt missing flattened emphasis: %q", got)
	}
	if strings.ContainsAny(got, "#*") {
		t.Errorf("markdown markers leaked: %q", got)
	}
}

func TestShapeExcerpt_LineLimit(t *testing.T) {
	got := shapeExcerpt("a\nb\nc\nd\ne", 100)
	if got != "a b c" {
		t.Errorf("shapeExcerpt() = %q, want first three lines", got)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	got := collapseWhitespace("  a \n\n b\t c  ")
	if got != "a b c" {
		t.Errorf("collapseWhitespace() = %q", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "short passes through", in: "abc", n: 5, want: "abc"},
		{name: "exact passes through", in: "abcde", n: 5, want: "abcde"},
		{name: "long is cut", in: "abcdef", n: 5, want: "abcde"},
		{name: "multibyte is rune aware", in: "héllo wörld", n: 6, want: "héllo "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateRunes(tt.in, tt.n); got != tt.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}
