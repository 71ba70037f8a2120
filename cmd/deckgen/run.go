package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	deckgen "github.com/alnah/go-deckgen"
	"github.com/alnah/go-deckgen/internal/config"
	"github.com/alnah/go-deckgen/internal/fileutil"
	"github.com/alnah/go-deckgen/internal/imagegen"
	"github.com/alnah/go-deckgen/internal/llmclient"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput       = errors.New("no input specified")
	ErrMissingInput  = errors.New("input file not found")
	ErrInvalidStyle  = errors.New("invalid style override")
	ErrMissingAPIKey = errors.New("required API key not set")
)

// run drives a single generation (or model listing) from parsed flags.
func run(ctx context.Context, flags *cliFlags, args []string, env *Environment) error {
	if flags.help {
		printUsage(env.Stdout)
		return nil
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "deckgen %s\n", Version)
		return nil
	}

	log := buildLogger(env, flags.common.quiet, flags.common.verbose)

	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, args, cfg)

	if flags.llm.listModels {
		return listModels(ctx, cfg.LLM.Model, env)
	}

	if len(cfg.Inputs) == 0 {
		return fmt.Errorf("%w: pass at least one -i/--input file", ErrNoInput)
	}
	if missing := missingInputs(cfg.Inputs); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingInput, strings.Join(missing, ", "))
	}

	style, err := parseStylePairs(flags.style.pairs, configStyle(cfg))
	if err != nil {
		return err
	}

	req := deckgen.Request{
		Inputs:          cfg.Inputs,
		Instructions:    cfg.Instructions,
		DurationMinutes: cfg.Duration,
		StylePrefs:      style,
		OutputPath:      cfg.Output,
		UseLLM:          cfg.LLM.Enabled,
		LLMProvider:     cfg.LLM.Provider,
		LLMModel:        cfg.LLM.Model,
		ImageBackend:    cfg.Image.Backend,
		ImageEndpoint:   cfg.Image.Endpoint,
		AssetsDir:       cfg.AssetsDir,
	}

	opts := []deckgen.Option{deckgen.WithLogger(log)}

	if req.UseLLM {
		text, err := llmclient.FromEnv(ctx, req.LLMProvider, req.LLMModel)
		if err != nil {
			return fmt.Errorf("building llm client: %w", err)
		}
		if text == nil {
			log.Warn().Str("provider", req.LLMProvider).Msg("no API key in environment; skipping LLM refinement")
		} else {
			opts = append(opts, deckgen.WithTextGenerator(text))
		}
	}

	opts = append(opts, deckgen.WithImageGenerator(buildImageGenerator(cfg, env, log)))

	result, err := deckgen.NewGenerator(opts...).Generate(ctx, req)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Slides built: %d\n", result.SlidesBuilt)
		fmt.Fprintf(env.Stdout, "Deck: %s\n", result.RequestedOutput)
		fmt.Fprintf(env.Stdout, "Preview: %s\n", result.PreviewPath)
		if flags.common.verbose {
			fmt.Fprintln(env.Stdout, result.Notes)
		}
	}

	return nil
}

// buildLogger creates a console logger honoring quiet/verbose.
func buildLogger(env *Environment, quiet, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case quiet:
		level = zerolog.ErrorLevel
	case verbose:
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: env.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// mergeFlags merges CLI flags into config. CLI values override config values.
// Positional args are treated as additional input files.
func mergeFlags(flags *cliFlags, args []string, cfg *config.Config) {
	// Content flags
	if inputs := append(flags.content.inputs, args...); len(inputs) > 0 {
		cfg.Inputs = inputs
	}
	if flags.content.instructions != "" {
		cfg.Instructions = flags.content.instructions
	}
	if flags.content.duration > 0 {
		cfg.Duration = flags.content.duration
	}

	// Output flags
	if flags.out.output != "" {
		cfg.Output = flags.out.output
	}
	if flags.out.assetsDir != "" {
		cfg.AssetsDir = flags.out.assetsDir
	}

	// LLM flags
	if flags.llm.enabled {
		cfg.LLM.Enabled = true
	}
	if flags.llm.provider != "" {
		cfg.LLM.Provider = flags.llm.provider
	}
	if flags.llm.model != "" {
		cfg.LLM.Model = flags.llm.model
	}

	// Image flags
	if flags.image.backend != "" {
		cfg.Image.Backend = flags.image.backend
	}
	if flags.image.endpoint != "" {
		cfg.Image.Endpoint = flags.image.endpoint
	}
	if flags.image.model != "" {
		cfg.Image.Model = flags.image.model
	}
}

// missingInputs returns every input path that does not resolve to a regular
// file. Any missing path aborts the run up front; the library's per-path
// degradation is for programmatic callers only.
func missingInputs(inputs []string) []string {
	var missing []string
	for _, path := range inputs {
		if !fileutil.FileExists(path) {
			missing = append(missing, path)
		}
	}
	return missing
}

// configStyle converts the config style block into the pipeline's theme map,
// skipping empty values.
func configStyle(cfg *config.Config) map[string]string {
	style := make(map[string]string)
	if cfg.Style.Ratio != "" {
		style[deckgen.ThemeKeyRatio] = cfg.Style.Ratio
	}
	if cfg.Style.Font != "" {
		style[deckgen.ThemeKeyFont] = cfg.Style.Font
	}
	if cfg.Style.Palette != "" {
		style[deckgen.ThemeKeyPalette] = cfg.Style.Palette
	}
	return style
}

// parseStylePairs applies key=value overrides on top of base.
func parseStylePairs(pairs []string, base map[string]string) (map[string]string, error) {
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q (expected key=value)", ErrInvalidStyle, pair)
		}
		base[key] = strings.TrimSpace(value)
	}
	return base, nil
}

// buildImageGenerator selects the image backend. The gemini backend needs an
// API key; without one it degrades to the placeholder-only comfy backend.
func buildImageGenerator(cfg *config.Config, env *Environment, log zerolog.Logger) deckgen.ImageGenerator {
	if strings.ToLower(cfg.Image.Backend) == deckgen.ImageBackendGemini {
		key := env.Getenv(llmclient.GeminiKeyEnv)
		if key == "" {
			key = env.Getenv(llmclient.GoogleKeyEnv)
		}
		if key != "" {
			return imagegen.NewGemini(key, cfg.Image.Model, log)
		}
		log.Warn().Msg("no Gemini API key in environment; image backend degraded to placeholders")
		return imagegen.NewComfy("", log)
	}
	return imagegen.NewComfy(cfg.Image.Endpoint, log)
}

// listModels prints available Gemini model names, one per line.
func listModels(ctx context.Context, model string, env *Environment) error {
	client, err := llmclient.FromEnv(ctx, llmclient.ProviderGemini, model)
	if err != nil {
		return fmt.Errorf("building llm client: %w", err)
	}
	if client == nil {
		return fmt.Errorf("%w: set %s or %s", ErrMissingAPIKey, llmclient.GeminiKeyEnv, llmclient.GoogleKeyEnv)
	}

	gem, ok := client.(*llmclient.Gemini)
	if !ok {
		return fmt.Errorf("model listing requires the gemini provider")
	}
	defer gem.Close()

	names, err := gem.ListModels(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(env.Stdout, name)
	}
	return nil
}
