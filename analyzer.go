package deckgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-deckgen/internal/extract"
)

// Analyzer defaults and prompt limits.
const (
	defaultTopic    = "General overview"
	defaultGuidance = "Review the inputs and highlight the key points."

	promptFindingsLimit   = 10
	promptDataPointsLimit = 5
	tableColumnsLimit     = 3
)

// Analyze parses the request inputs into a coarse content summary.
//
// Every input is processed in the order given; unreadable or unrecognized
// files are recorded as findings and never abort the stage. When a text
// generator is configured and the request opts in, an LLM condensation of
// the findings is appended as one more finding. Analyze never fails.
func (g *Generator) Analyze(ctx context.Context, req Request) ContentSummary {
	var summary ContentSummary

	if focus := strings.TrimSpace(req.Instructions); focus != "" {
		summary.Findings = append(summary.Findings, "User focus: "+focus)
	}

	for _, path := range req.Inputs {
		g.analyzeInput(path, &summary)
	}

	if req.UseLLM && g.text != nil {
		g.appendCondensation(ctx, req.Instructions, &summary)
	}

	if len(summary.Topics) == 0 {
		summary.Topics = []string{defaultTopic}
	}
	if len(summary.Findings) == 0 {
		summary.Findings = []string{defaultGuidance}
	}
	return summary
}

// analyzeInput records provenance for one input path and dispatches to the
// extension-specific extractor.
func (g *Generator) analyzeInput(path string, summary *ContentSummary) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		summary.Findings = append(summary.Findings, fmt.Sprintf("Missing input noted: %s", path))
		return
	}

	name := filepath.Base(path)
	summary.Findings = append(summary.Findings, fmt.Sprintf("Detected input file: %s", name))
	summary.Sources = append(summary.Sources, resolvePath(path))
	summary.Topics = append(summary.Topics, strings.TrimSuffix(name, filepath.Ext(name)))

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		g.recordTextExcerpt(path, name, summary, extract.TextExcerpt)
	case ".md", ".markdown":
		g.recordTextExcerpt(path, name, summary, extract.MarkdownExcerpt)
	case ".csv", ".tsv", ".xlsx":
		g.recordTableSummary(path, name, summary)
	case ".pdf":
		g.recordPDFExcerpt(path, name, summary)
	default:
		summary.Findings = append(summary.Findings, fmt.Sprintf("Unhandled file type: %s", name))
	}
}

// recordTextExcerpt captures the opening lines of a plain-text or markdown
// input. Read failures become findings, not errors.
func (g *Generator) recordTextExcerpt(path, name string, summary *ContentSummary, excerptFn func(string, int) (string, error)) {
	excerpt, err := excerptFn(path, MaxExcerptRunes)
	if err != nil {
		g.log.Warn().Err(err).Str("input", path).Msg("text excerpt failed")
		summary.Findings = append(summary.Findings, fmt.Sprintf("Could not read %s: %v", name, err))
		return
	}
	if excerpt == "" {
		summary.Findings = append(summary.Findings, fmt.Sprintf("No text content found in %s", name))
		return
	}
	summary.Findings = append(summary.Findings, fmt.Sprintf("Excerpt from %s: %s", name, excerpt))
}

// recordTableSummary captures row/column counts as a finding and per-column
// numeric statistics as data points. A missing or failing table backend is a
// recoverable, degraded-capability condition.
func (g *Generator) recordTableSummary(path, name string, summary *ContentSummary) {
	table, err := extract.SummarizeTable(path)
	if err != nil {
		g.log.Warn().Err(err).Str("input", path).Msg("table parsing failed")
		summary.Findings = append(summary.Findings,
			fmt.Sprintf("Table parsing unavailable for %s; continuing without data points", name))
		return
	}

	summary.Findings = append(summary.Findings,
		fmt.Sprintf("Table %s: %d rows x %d columns", name, table.Rows, table.Cols))

	columns := table.Columns
	if len(columns) > tableColumnsLimit {
		columns = columns[:tableColumnsLimit]
	}
	for _, col := range columns {
		summary.DataPoints = append(summary.DataPoints,
			fmt.Sprintf("%s mean %.2f", col.Name, col.Mean),
			fmt.Sprintf("%s max %.2f", col.Name, col.Max))
	}
}

// recordPDFExcerpt captures the first page of a PDF with newlines collapsed.
// Unavailable backend, empty document, and parse failure each produce a
// finding but never raise.
func (g *Generator) recordPDFExcerpt(path, name string, summary *ContentSummary) {
	excerpt, err := extract.PDFExcerpt(path, MaxExcerptRunes)
	if err != nil {
		g.log.Warn().Err(err).Str("input", path).Msg("pdf excerpt failed")
		summary.Findings = append(summary.Findings, fmt.Sprintf("Could not extract text from %s: %v", name, err))
		return
	}
	if excerpt == "" {
		summary.Findings = append(summary.Findings, fmt.Sprintf("No text content found in %s", name))
		return
	}
	summary.Findings = append(summary.Findings, fmt.Sprintf("PDF excerpt from %s: %s", name, excerpt))
}

// appendCondensation asks the text generator to condense the findings so far.
// Any failure is logged and skipped; this stage never fails the pipeline.
func (g *Generator) appendCondensation(ctx context.Context, instructions string, summary *ContentSummary) {
	prompt := buildCondensationPrompt(*summary, instructions)

	cctx, cancel := g.remoteContext(ctx)
	defer cancel()

	condensed, err := g.text.Generate(cctx, prompt)
	if err != nil {
		g.log.Warn().Err(err).Msg("llm condensation failed")
		return
	}
	condensed = strings.TrimSpace(condensed)
	if condensed == "" {
		return
	}
	summary.Findings = append(summary.Findings, "LLM summary: "+condensed)
}

// buildCondensationPrompt assembles a bounded prompt from the summary:
// at most promptFindingsLimit findings and promptDataPointsLimit data points.
func buildCondensationPrompt(summary ContentSummary, instructions string) string {
	var b strings.Builder
	b.WriteString("Condense the following presentation research notes into a short summary.\n")
	if focus := strings.TrimSpace(instructions); focus != "" {
		b.WriteString("Audience guidance: " + focus + "\n")
	}

	b.WriteString("Findings:\n")
	findings := summary.Findings
	if len(findings) > promptFindingsLimit {
		findings = findings[:promptFindingsLimit]
	}
	for _, finding := range findings {
		b.WriteString("- " + finding + "\n")
	}

	if len(summary.DataPoints) > 0 {
		b.WriteString("Data points:\n")
		points := summary.DataPoints
		if len(points) > promptDataPointsLimit {
			points = points[:promptDataPointsLimit]
		}
		for _, point := range points {
			b.WriteString("- " + point + "\n")
		}
	}
	return b.String()
}

// resolvePath returns the absolute form of path, falling back to the
// original when resolution fails.
func resolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
