package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-deckgen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits for multi-tenant safety.
const (
	MaxPathLength         = 2048 // Output and assets paths
	MaxInstructionsLength = 2000 // Free-form user guidance
	MaxStyleKeyLength     = 50   // "ratio", "font", "palette"
	MaxStyleValueLength   = 200  // Font names, palette names
	MaxProviderLength     = 30   // "gemini", "openai"
	MaxModelLength        = 100  // Provider model identifier
	MaxEndpointLength     = 2048 // Browser limit
)

// Config holds all configuration for deck generation.
type Config struct {
	Inputs       []string    `yaml:"inputs"`
	Instructions string      `yaml:"instructions"`
	Duration     int         `yaml:"duration"`
	Output       string      `yaml:"output"`
	AssetsDir    string      `yaml:"assetsDir"`
	Style        StyleConfig `yaml:"style"`
	LLM          LLMConfig   `yaml:"llm"`
	Image        ImageConfig `yaml:"image"`
}

// StyleConfig defines presentation styling preferences.
type StyleConfig struct {
	Ratio   string `yaml:"ratio"`   // "16:9" (default) or "4:3"
	Font    string `yaml:"font"`    // Deck-wide font family
	Palette string `yaml:"palette"` // "high-contrast" (default) or "light"
}

// LLMConfig defines text-generation options.
type LLMConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Provider string `yaml:"provider"` // "gemini" (default) or "openai"
	Model    string `yaml:"model"`    // Empty = provider default
}

// ImageConfig defines image-generation options.
type ImageConfig struct {
	Backend  string `yaml:"backend"`  // "comfy" (default) or "gemini"
	Endpoint string `yaml:"endpoint"` // ComfyUI base URL (empty = placeholders only)
	Model    string `yaml:"model"`    // Gemini image model override
}

// Validate checks field lengths and enumerations. Called automatically by
// LoadConfig, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("output", c.Output, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assetsDir", c.AssetsDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("instructions", c.Instructions, MaxInstructionsLength); err != nil {
		return err
	}
	for i, input := range c.Inputs {
		if err := validateFieldLength(fmt.Sprintf("inputs[%d]", i), input, MaxPathLength); err != nil {
			return err
		}
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration: must not be negative, got %d", c.Duration)
	}

	// Validate style fields
	if err := validateFieldLength("style.ratio", c.Style.Ratio, MaxStyleValueLength); err != nil {
		return err
	}
	if err := validateFieldLength("style.font", c.Style.Font, MaxStyleValueLength); err != nil {
		return err
	}
	if err := validateFieldLength("style.palette", c.Style.Palette, MaxStyleValueLength); err != nil {
		return err
	}

	// Validate LLM fields
	if err := validateFieldLength("llm.provider", c.LLM.Provider, MaxProviderLength); err != nil {
		return err
	}
	if err := validateFieldLength("llm.model", c.LLM.Model, MaxModelLength); err != nil {
		return err
	}
	if c.LLM.Provider != "" {
		switch strings.ToLower(c.LLM.Provider) {
		case "gemini", "openai":
			// valid
		default:
			return fmt.Errorf("llm.provider: invalid value %q (must be gemini or openai)", c.LLM.Provider)
		}
	}

	// Validate image fields
	if err := validateFieldLength("image.backend", c.Image.Backend, MaxProviderLength); err != nil {
		return err
	}
	if err := validateFieldLength("image.endpoint", c.Image.Endpoint, MaxEndpointLength); err != nil {
		return err
	}
	if err := validateFieldLength("image.model", c.Image.Model, MaxModelLength); err != nil {
		return err
	}
	if c.Image.Backend != "" {
		switch strings.ToLower(c.Image.Backend) {
		case "comfy", "gemini":
			// valid
		default:
			return fmt.Errorf("image.backend: invalid value %q (must be comfy or gemini)", c.Image.Backend)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration with all remote features disabled.
func DefaultConfig() *Config {
	return &Config{
		LLM:   LLMConfig{Enabled: false},
		Image: ImageConfig{Backend: ""},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-deckgen/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-deckgen", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
