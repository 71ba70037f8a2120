// Package deckgen turns heterogeneous documents into a slide deck.
//
// # Quick Start
//
// Create a generator and run the pipeline:
//
//	gen := deckgen.NewGenerator()
//	result, err := gen.Generate(ctx, deckgen.Request{
//	    Inputs:     []string{"report.md", "metrics.csv"},
//	    OutputPath: "output/presentation.pptx",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.PreviewPath)
//
// The result names the rendered deck, the markdown preview written next to
// it, and the number of slides built.
//
// # Pipeline
//
// Generation runs four sequential stages, each consuming the complete
// output of the previous one:
//
//  1. Analyze: read inputs (text, markdown, CSV/TSV, XLSX, PDF) into a
//     ContentSummary of topics, findings, data points, and sources.
//  2. Outline: size the deck (one slide per minute, or derived from
//     content complexity) and plan titles, bullets, and visuals.
//  3. Design: assign rotating layouts, normalize titles, and attach
//     asset placeholders (optionally backed by generated images).
//  4. Assemble: render the PPTX deck and a markdown preview.
//
// Stages degrade rather than fail: unreadable inputs, missing parser
// backends, and remote-call failures become findings or fallbacks, never
// errors. Only an empty input set aborts a run.
//
// # Optional Capabilities
//
// Text and image generation are injected capabilities. When absent, the
// pipeline produces the same structure with placeholder content:
//
//	gen := deckgen.NewGenerator(
//	    deckgen.WithTextGenerator(llm),      // bullet/summary refinement
//	    deckgen.WithImageGenerator(images),  // slide visuals
//	    deckgen.WithTimeout(20*time.Second), // remote-call budget
//	    deckgen.WithLogger(logger),
//	)
//
// Every capability call site treats failure as "no result" and substitutes
// a fallback; a refused or timed-out call never aborts the run.
package deckgen
