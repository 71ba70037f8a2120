package deckgen

import (
	"fmt"
	"strings"
)

// previewHeader opens every markdown preview.
const previewHeader = "# Deckgen Preview"

// RenderPreview renders the drafts as a markdown preview: a document
// heading, then per slide a "## Slide N" heading, bullet lines, and
// optional assets/sources/notes annotation lines, with a blank line after
// each slide. The output format is part of the contract; tests snapshot it
// byte for byte.
func RenderPreview(drafts []SlideDraft) string {
	lines := []string{previewHeader, ""}
	for i, draft := range drafts {
		lines = append(lines, fmt.Sprintf("## Slide %d: %s", i+1, draft.Title))
		for _, bullet := range draft.Bullets {
			lines = append(lines, "- "+bullet)
		}
		if len(draft.Assets) > 0 {
			types := make([]string, len(draft.Assets))
			for j, asset := range draft.Assets {
				types[j] = asset.Type
			}
			lines = append(lines, "_Assets_: "+joinComma(types))
		}
		if len(draft.Sources) > 0 {
			lines = append(lines, "_Sources_: "+joinComma(draft.Sources))
		}
		if draft.Notes != "" {
			lines = append(lines, "_Notes_: "+draft.Notes)
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// joinComma joins items with ", " for annotation lines.
func joinComma(items []string) string {
	return strings.Join(items, ", ")
}
