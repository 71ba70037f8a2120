package deckgen

import (
	"context"
	"strings"
)

// layoutRotation is the deterministic layout cycle applied in outline order.
// Index-modulo selection keeps the rotation free of shared iterator state.
var layoutRotation = []string{LayoutSplit, LayoutStacked, LayoutFocus}

// draftNotes is the fixed speaker note stamped on every draft.
const draftNotes = "Drafted with automatic layout rotation."

// DesignOptions carries the caller-supplied knobs for the design stage.
type DesignOptions struct {
	AssetsDir string // destination for generated images; empty disables generation
}

// Design converts an outline plan into slide drafts ready for assembly.
//
// Slide i receives layoutRotation[i mod 3] regardless of content. Titles of
// the form "Topic: key takeaway" are reduced to the text after the first
// colon; titles without a colon pass through unchanged. When an outline
// slide suggests a visual, one AssetSpec of that type is attached; image
// suggestions are additionally sent to the image generator when one is
// configured, with failures degrading to the placeholder prompt.
func (g *Generator) Design(ctx context.Context, plan OutlinePlan, opts DesignOptions) []SlideDraft {
	drafts := make([]SlideDraft, 0, len(plan.Slides))
	for i, slide := range plan.Slides {
		bullets := slide.Bullets
		if len(bullets) > MaxDraftBullets {
			bullets = bullets[:MaxDraftBullets]
		}

		drafts = append(drafts, SlideDraft{
			Title:   titleAsConclusion(slide.Title),
			Bullets: bullets,
			Layout:  layoutRotation[i%len(layoutRotation)],
			Assets:  g.buildAssets(ctx, slide, opts.AssetsDir),
			Notes:   draftNotes,
			Sources: slide.Sources,
		})
	}
	return drafts
}

// buildAssets constructs the asset list for one slide: at most one spec,
// typed after the outline's visual suggestion.
func (g *Generator) buildAssets(ctx context.Context, slide OutlineSlide, assetsDir string) []AssetSpec {
	if slide.Visual == "" {
		return nil
	}

	asset := AssetSpec{
		Type:   slide.Visual,
		Prompt: "Visual for " + slide.Title,
	}

	if slide.Visual == VisualImage && g.image != nil && assetsDir != "" {
		cctx, cancel := g.remoteContext(ctx)
		defer cancel()

		path, err := g.image.Generate(cctx, asset.Prompt, assetsDir)
		if err != nil {
			// Degrade to the placeholder caption; the renderer falls back
			// to prompt text when no file path is present.
			g.log.Warn().Err(err).Str("slide", slide.Title).Msg("image generation failed")
		} else {
			asset.Path = path
		}
	}

	return []AssetSpec{asset}
}

// titleAsConclusion reduces a "Topic: key takeaway" planning title to its
// conclusion part. Idempotent for titles without a colon.
func titleAsConclusion(title string) string {
	if _, after, found := strings.Cut(title, ":"); found {
		return strings.TrimSpace(after)
	}
	return title
}
