package deckgen

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// TextGenerator is the capability interface for remote text generation.
// Implementations are expected to be fallible: callers treat every error
// as "no result" and keep their fallback content.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ImageGenerator is the capability interface for remote image generation.
// Generate returns the path of the produced image inside dir.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt, dir string) (string, error)
}

// defaultRemoteTimeout bounds a single remote call (LLM or image backend).
const defaultRemoteTimeout = 15 * time.Second

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	timeout time.Duration
}

// Option configures a Generator.
type Option func(*Generator)

// WithTimeout sets the per-call budget for remote text and image generation.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("deckgen: WithTimeout duration must be positive")
	}
	return func(g *Generator) {
		g.cfg.timeout = d
	}
}

// WithLogger sets the logger used for degraded-capability warnings.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// WithTextGenerator injects a remote text-generation capability.
// Without one, LLM refinement is silently disabled.
func WithTextGenerator(t TextGenerator) Option {
	return func(g *Generator) {
		g.text = t
	}
}

// WithImageGenerator injects a remote image-generation capability.
// Without one, slide visuals stay as placeholder captions.
func WithImageGenerator(i ImageGenerator) Option {
	return func(g *Generator) {
		g.image = i
	}
}

// Generator orchestrates the analyze → outline → design → assemble pipeline.
// Create with NewGenerator; a zero Generator is not usable.
type Generator struct {
	cfg   generatorConfig
	log   zerolog.Logger
	text  TextGenerator
	image ImageGenerator
}

// NewGenerator creates a Generator with default configuration.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		cfg: generatorConfig{timeout: defaultRemoteTimeout},
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs the end-to-end pipeline for a single request.
//
// Each stage runs to completion before the next starts, and each stage
// exclusively owns its output. Stage-internal failures degrade to findings
// or fallbacks; the only fatal condition is a request whose inputs resolve
// to nothing.
func (g *Generator) Generate(ctx context.Context, req Request) (*AssemblyResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	summary := g.Analyze(ctx, req)

	plan := g.Outline(ctx, summary, OutlineOptions{
		DurationMinutes: req.DurationMinutes,
		StylePrefs:      req.StylePrefs,
		Refine:          req.UseLLM,
	})

	assetsDir := req.AssetsDir
	if assetsDir == "" {
		assetsDir = DefaultAssetsDir
	}
	drafts := g.Design(ctx, plan, DesignOptions{AssetsDir: assetsDir})

	output := req.OutputPath
	if output == "" {
		output = DefaultOutputPath
	}
	return g.Assemble(drafts, output, plan.Theme)
}

// validateRequest is the pre-flight check: the single fatal condition is a
// request whose inputs resolve to nothing.
func validateRequest(req Request) error {
	if len(req.Inputs) == 0 {
		return ErrNoInputs
	}
	for _, path := range req.Inputs {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return nil
		}
	}
	return fmt.Errorf("%w: none of the inputs exist: %s", ErrNoInputs, strings.Join(req.Inputs, ", "))
}

// remoteContext derives a bounded context for a single remote call.
func (g *Generator) remoteContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, g.cfg.timeout)
}
