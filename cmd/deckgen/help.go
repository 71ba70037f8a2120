package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deckgen [flags] [input...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a PPTX slide deck from content files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "  -i, --input <path>        Input file (repeatable): txt, md, csv, tsv, xlsx, pdf")
	fmt.Fprintln(w, "  -m, --instructions <s>    Free-text guidance for the deck")
	fmt.Fprintln(w, "  -d, --duration <n>        Target duration in minutes (0 = derive from content)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "  -s, --style <k=v>         Style override (repeatable): ratio, font, palette")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Deck output path (default output/presentation.pptx)")
	fmt.Fprintln(w, "      --assets-dir <path>   Directory for generated images (default assets)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Text generation:")
	fmt.Fprintln(w, "      --use-llm             Refine content with an LLM (needs API key in env)")
	fmt.Fprintln(w, "      --llm-provider <s>    Provider: gemini, openai (default gemini)")
	fmt.Fprintln(w, "      --llm-model <s>       Provider model override")
	fmt.Fprintln(w, "      --list-models         List available Gemini models and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Image generation:")
	fmt.Fprintln(w, "      --image-backend <s>   Backend: comfy, gemini (default comfy)")
	fmt.Fprintln(w, "      --image-endpoint <s>  ComfyUI base URL (empty = placeholders only)")
	fmt.Fprintln(w, "      --image-model <s>     Image model override for the gemini backend")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show pipeline details")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  GEMINI_API_KEY / GOOGLE_API_KEY   Gemini text and image generation")
	fmt.Fprintln(w, "  OPENAI_API_KEY                    OpenAI text generation")
}
