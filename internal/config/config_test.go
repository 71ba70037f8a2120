package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deckgen.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
inputs:
  - data/report.pdf
  - data/metrics.csv
instructions: focus on revenue
duration: 10
output: out/deck.pptx
assetsDir: out/assets
style:
  ratio: "16:9"
  font: Inter
  palette: light
llm:
  enabled: true
  provider: openai
  model: gpt-4o-mini
image:
  backend: comfy
  endpoint: http://localhost:8188
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if len(cfg.Inputs) != 2 || cfg.Inputs[0] != "data/report.pdf" {
		t.Errorf("Inputs = %v", cfg.Inputs)
	}
	if cfg.Duration != 10 {
		t.Errorf("Duration = %d, want 10", cfg.Duration)
	}
	if cfg.Style.Palette != "light" {
		t.Errorf("Style.Palette = %q", cfg.Style.Palette)
	}
	if !cfg.LLM.Enabled || cfg.LLM.Provider != "openai" {
		t.Errorf("LLM = %+v", cfg.LLM)
	}
	if cfg.Image.Endpoint != "http://localhost:8188" {
		t.Errorf("Image.Endpoint = %q", cfg.Image.Endpoint)
	}
}

func TestLoadConfig_EmptyName(t *testing.T) {
	_, err := LoadConfig("")
	if !errors.Is(err, ErrEmptyConfigName) {
		t.Errorf("error = %v, want ErrEmptyConfigName", err)
	}
}

func TestLoadConfig_NotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/deckgen.yaml")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfig_ParseError(t *testing.T) {
	path := writeConfig(t, "output: [unclosed")

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("error = %v, want ErrConfigParse", err)
	}
}

func TestLoadConfig_UnknownField(t *testing.T) {
	path := writeConfig(t, "nonsense: true")

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("error = %v, want ErrConfigParse for unknown field", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
		wantMsg string
	}{
		{
			name: "valid",
			cfg: Config{
				Output: "out/deck.pptx",
				LLM:    LLMConfig{Provider: "gemini"},
				Image:  ImageConfig{Backend: "comfy"},
			},
		},
		{
			name:    "output too long",
			cfg:     Config{Output: strings.Repeat("a", MaxPathLength+1)},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "instructions too long",
			cfg:     Config{Instructions: strings.Repeat("a", MaxInstructionsLength+1)},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "negative duration",
			cfg:     Config{Duration: -1},
			wantMsg: "duration",
		},
		{
			name:    "bad provider",
			cfg:     Config{LLM: LLMConfig{Provider: "claude"}},
			wantMsg: "llm.provider",
		},
		{
			name:    "bad backend",
			cfg:     Config{Image: ImageConfig{Backend: "dalle"}},
			wantMsg: "image.backend",
		},
		{
			name: "provider case-insensitive",
			cfg:  Config{LLM: LLMConfig{Provider: "Gemini"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil && tt.wantMsg == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && (err == nil || !strings.Contains(err.Error(), tt.wantMsg)) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantMsg)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.LLM.Enabled {
		t.Error("LLM should be disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}
