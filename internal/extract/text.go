// Package extract reads excerpts and numeric summaries out of input files.
//
// Every function takes a path and returns either shaped content or an
// error; callers record errors as findings and continue. Nothing in this
// package aborts a pipeline run.
package extract

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// excerptLines is how many opening non-blank lines an excerpt keeps.
const excerptLines = 3

// TextExcerpt reads a plain-text file and returns its first three non-blank
// lines joined with spaces, capped at maxRunes.
func TextExcerpt(path string, maxRunes int) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided input path
	if err != nil {
		return "", fmt.Errorf("reading text file: %w", err)
	}
	return shapeExcerpt(string(content), maxRunes), nil
}

// MarkdownExcerpt reads a markdown file and returns an excerpt of its plain
// text, so heading and emphasis markers do not leak into findings. The
// document is parsed with goldmark and text segments are collected from the
// AST, one line per block.
func MarkdownExcerpt(path string, maxRunes int) (string, error) {
	source, err := os.ReadFile(path) // #nosec G304 -- user-provided input path
	if err != nil {
		return "", fmt.Errorf("reading markdown file: %w", err)
	}
	return shapeExcerpt(markdownPlainText(source), maxRunes), nil
}

// markdownPlainText flattens a markdown document to its text content.
func markdownPlainText(source []byte) string {
	md := goldmark.New()
	doc := md.Parser().Parse(gmtext.NewReader(source))

	var buf bytes.Buffer
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if text, ok := n.(*ast.Text); ok {
			if entering {
				buf.Write(text.Segment.Value(source))
				if text.SoftLineBreak() || text.HardLineBreak() {
					buf.WriteByte('\n')
				}
			}
			return ast.WalkContinue, nil
		}
		// Block boundaries become line boundaries.
		if !entering && n.Type() == ast.TypeBlock {
			buf.WriteByte('\n')
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

// shapeExcerpt keeps the first excerptLines non-blank lines, joins them
// with single spaces, and caps the result at maxRunes.
func shapeExcerpt(content string, maxRunes int) string {
	var kept []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		kept = append(kept, line)
		if len(kept) == excerptLines {
			break
		}
	}
	return TruncateRunes(strings.Join(kept, " "), maxRunes)
}

// collapseWhitespace folds all whitespace runs, including newlines, into
// single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateRunes caps s at n runes without cutting mid-character.
func TruncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
