package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "regular file", path: file, want: true},
		{name: "directory", path: dir, want: false},
		{name: "missing", path: filepath.Join(dir, "absent.txt"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestWithExtension(t *testing.T) {
	tests := []struct {
		name string
		path string
		ext  string
		want string
	}{
		{name: "replaces extension", path: "deck.pptx", ext: ".md", want: "deck.md"},
		{name: "appends when none", path: "out/deck", ext: ".md", want: "out/deck.md"},
		{name: "keeps directories", path: "a/b/deck.pptx", ext: ".md", want: "a/b/deck.md"},
		{name: "last extension only", path: "deck.v2.pptx", ext: ".md", want: "deck.v2.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithExtension(tt.path, tt.ext); got != tt.want {
				t.Errorf("WithExtension(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
			}
		})
	}
}

func TestEnsureParentDir(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "deck.pptx")

	if err := EnsureParentDir(target); err != nil {
		t.Fatalf("EnsureParentDir() error = %v", err)
	}

	info, err := os.Stat(filepath.Dir(target))
	if err != nil || !info.IsDir() {
		t.Errorf("parent dir not created: %v", err)
	}
}

func TestEnsureParentDir_BareName(t *testing.T) {
	if err := EnsureParentDir("deck.pptx"); err != nil {
		t.Errorf("EnsureParentDir() error = %v, want nil for bare name", err)
	}
}

func TestIsFilePath(t *testing.T) {
	if !IsFilePath("configs/prod.yaml") {
		t.Error("slash path not detected")
	}
	if !IsFilePath(`configs\prod.yaml`) {
		t.Error("backslash path not detected")
	}
	if IsFilePath("prod") {
		t.Error("bare name detected as path")
	}
}
