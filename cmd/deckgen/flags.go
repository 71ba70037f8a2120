package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across modes.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// contentFlags holds content-source flags.
type contentFlags struct {
	inputs       []string
	instructions string
	duration     int
}

// styleFlags holds presentation styling flags.
type styleFlags struct {
	pairs []string // key=value overrides: ratio, font, palette
}

// outputFlags holds output destination flags.
type outputFlags struct {
	output    string
	assetsDir string
}

// llmFlags holds text-generation flags.
type llmFlags struct {
	enabled    bool
	provider   string
	model      string
	listModels bool
}

// imageFlags holds image-generation flags.
type imageFlags struct {
	backend  string
	endpoint string
	model    string
}

// cliFlags holds all flags for the generate run.
type cliFlags struct {
	common  commonFlags
	content contentFlags
	style   styleFlags
	out     outputFlags
	llm     llmFlags
	image   imageFlags
	version bool
	help    bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show pipeline details")
}

// addContentFlags adds content-source flags to a FlagSet.
func addContentFlags(fs *flag.FlagSet, f *contentFlags) {
	fs.StringArrayVarP(&f.inputs, "input", "i", nil, "input file (repeatable): txt, md, csv, tsv, xlsx, pdf")
	fs.StringVarP(&f.instructions, "instructions", "m", "", "free-text guidance for the deck")
	fs.IntVarP(&f.duration, "duration", "d", 0, "target duration in minutes (0 = derive from content)")
}

// addStyleFlags adds styling flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringArrayVarP(&f.pairs, "style", "s", nil, "style override key=value (ratio, font, palette; repeatable)")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "deck output path (default output/presentation.pptx)")
	fs.StringVar(&f.assetsDir, "assets-dir", "", "directory for generated images (default assets)")
}

// addLLMFlags adds text-generation flags to a FlagSet.
func addLLMFlags(fs *flag.FlagSet, f *llmFlags) {
	fs.BoolVar(&f.enabled, "use-llm", false, "refine content with an LLM (needs API key in env)")
	fs.StringVar(&f.provider, "llm-provider", "", "LLM provider: gemini, openai (default gemini)")
	fs.StringVar(&f.model, "llm-model", "", "provider model override")
	fs.BoolVar(&f.listModels, "list-models", false, "list available Gemini models and exit")
}

// addImageFlags adds image-generation flags to a FlagSet.
func addImageFlags(fs *flag.FlagSet, f *imageFlags) {
	fs.StringVar(&f.backend, "image-backend", "", "image backend: comfy, gemini (default comfy)")
	fs.StringVar(&f.endpoint, "image-endpoint", "", "ComfyUI base URL (empty = placeholders only)")
	fs.StringVar(&f.model, "image-model", "", "image model override for the gemini backend")
}

// parseFlags parses all flags and returns remaining positional args.
// Positional args are treated as additional input files.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("deckgen", flag.ContinueOnError)
	f := &cliFlags{}

	addCommonFlags(fs, &f.common)
	addContentFlags(fs, &f.content)
	addStyleFlags(fs, &f.style)
	addOutputFlags(fs, &f.out)
	addLLMFlags(fs, &f.llm)
	addImageFlags(fs, &f.image)
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
