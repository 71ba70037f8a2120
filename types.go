package deckgen

// Default request values.
const (
	DefaultOutputPath = "output/presentation.pptx"
	DefaultAssetsDir  = "assets"
)

// LLM provider identifiers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Image backend identifiers.
const (
	ImageBackendComfy  = "comfy"
	ImageBackendGemini = "gemini"
)

// Visual suggestion tags carried on outline slides.
const (
	VisualChart = "chart"
	VisualImage = "image"
)

// Asset type tags.
const (
	AssetChart      = "chart"
	AssetImage      = "image"
	AssetBackground = "background"
)

// Slide layout tags, assigned round-robin in outline order.
const (
	LayoutSplit   = "split"
	LayoutStacked = "stacked"
	LayoutFocus   = "focus"
)

// Theme keys and defaults.
const (
	ThemeKeyRatio   = "ratio"
	ThemeKeyFont    = "font"
	ThemeKeyPalette = "palette"

	DefaultRatio   = "16:9"
	DefaultFont    = "Segoe UI"
	DefaultPalette = "high-contrast"
)

// Content limits enforced by the pipeline stages.
const (
	// MaxOutlineBullets caps bullets planned per outline slide.
	MaxOutlineBullets = 5
	// MaxDraftBullets is the designer's safety ceiling; it deliberately
	// exceeds MaxOutlineBullets so tightening one cannot silently change
	// the other.
	MaxDraftBullets = 6
	// MaxBulletRunes truncates individual bullet text.
	MaxBulletRunes = 120
	// MaxExcerptRunes truncates text and PDF excerpts recorded as findings.
	MaxExcerptRunes = 200

	// MinAutoSlides and MaxAutoSlides bound the content-derived slide count
	// when no duration is given.
	MinAutoSlides = 3
	MaxAutoSlides = 12
)

// Request describes a single presentation-generation run.
type Request struct {
	Inputs          []string          // input file paths (text, markdown, csv, tsv, xlsx, pdf)
	Instructions    string            // free-text guidance, optional
	DurationMinutes int               // target duration; 0 = derive slide count from content
	StylePrefs      map[string]string // theme overrides (e.g. palette=light)
	OutputPath      string            // deck destination; empty = DefaultOutputPath
	UseLLM          bool              // enable text refinement when a generator is configured
	LLMProvider     string            // "gemini" or "openai"
	LLMModel        string            // provider model override, optional
	ImageBackend    string            // "comfy" or "gemini"
	ImageEndpoint   string            // image backend endpoint, optional
	AssetsDir       string            // generated asset destination; empty = DefaultAssetsDir
}

// ContentSummary is the analyzer's structured understanding of the inputs.
// Built once per request and treated as immutable by later stages.
type ContentSummary struct {
	Topics     []string // one per recognized input, or a single default
	Findings   []string // human-readable observations, warnings, excerpts
	DataPoints []string // derived numeric summaries, at most a few per table
	Sources    []string // resolved absolute paths of successfully read inputs
}

// OutlineSlide is a single unstyled slide plan.
type OutlineSlide struct {
	Title   string
	Bullets []string // at most MaxOutlineBullets
	Visual  string   // VisualChart, VisualImage, or "" for none
	Sources []string
}

// OutlinePlan is the outliner's complete deck plan.
type OutlinePlan struct {
	Slides []OutlineSlide
	Theme  map[string]string // resolved theme: defaults merged with style prefs
}

// AssetSpec is a placeholder or resolved visual attached to a slide.
type AssetSpec struct {
	Type    string // AssetChart, AssetImage, or AssetBackground
	Path    string // resolved file path; empty when generation did not run or failed
	Prompt  string // placeholder caption when no file is available
	DataRef string // opaque data reference, optional
}

// SlideDraft is a designed slide ready for assembly.
type SlideDraft struct {
	Title   string
	Bullets []string // at most MaxDraftBullets
	Layout  string   // LayoutSplit, LayoutStacked, or LayoutFocus
	Assets  []AssetSpec
	Notes   string
	Sources []string
}

// AssemblyResult is the outcome of the assembler stage.
type AssemblyResult struct {
	RequestedOutput string // resolved deck path
	PreviewPath     string // markdown preview path (same stem, .md extension)
	SlidesBuilt     int
	Notes           string // human-readable status note
}

// DefaultTheme returns the base theme before style-preference overrides.
func DefaultTheme() map[string]string {
	return map[string]string{
		ThemeKeyRatio:   DefaultRatio,
		ThemeKeyFont:    DefaultFont,
		ThemeKeyPalette: DefaultPalette,
	}
}
