package deckgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-deckgen/internal/extract"
)

// titleSuffix turns a topic into a planning title. The designer later keeps
// only the text after the colon, converting it into a conclusion-style title.
const titleSuffix = ": key takeaway"

// refineBulletWords is the word budget requested from the LLM per bullet.
const refineBulletWords = 12

// OutlineOptions carries the caller-supplied knobs for the outline stage.
type OutlineOptions struct {
	DurationMinutes int               // target duration; 0 = derive from content
	StylePrefs      map[string]string // theme overrides, merged over defaults
	Refine          bool              // tighten bullets via the text generator
}

// Outline expands a content summary into an ordered slide plan.
//
// Slide count follows the one-slide-per-minute rule when a duration is
// given; otherwise it is derived from content complexity, clamped to
// [MinAutoSlides, MaxAutoSlides]. Topics are reused cyclically when there
// are fewer topics than slots. The visual suggestion is a single global
// choice: chart when any data points exist, image otherwise.
func (g *Generator) Outline(ctx context.Context, summary ContentSummary, opts OutlineOptions) OutlinePlan {
	count := estimateSlideCount(summary, opts.DurationMinutes)

	topics := summary.Topics
	if len(topics) > count {
		topics = topics[:count]
	}
	if len(topics) == 0 {
		topics = []string{"Overview"}
	}

	visual := pickVisual(summary)
	slides := make([]OutlineSlide, 0, count)
	for i := 0; i < count; i++ {
		topic := topics[i%len(topics)]
		title := topic + titleSuffix
		bullets := buildBullets(summary, topic)
		if opts.Refine && g.text != nil {
			bullets = g.refineBullets(ctx, title, bullets)
		}
		slides = append(slides, OutlineSlide{
			Title:   title,
			Bullets: bullets,
			Visual:  visual,
			Sources: summary.Sources,
		})
	}

	return OutlinePlan{
		Slides: slides,
		Theme:  mergeTheme(opts.StylePrefs),
	}
}

// estimateSlideCount applies the one-minute rule, falling back to a
// complexity-derived count with floor MinAutoSlides and ceiling MaxAutoSlides.
func estimateSlideCount(summary ContentSummary, durationMinutes int) int {
	if durationMinutes > 0 {
		return durationMinutes
	}
	complexity := max(len(summary.Findings), max(len(summary.Topics), 1))
	return min(max(complexity, MinAutoSlides), MaxAutoSlides)
}

// buildBullets selects up to MaxOutlineBullets findings as bullets, each
// capped at MaxBulletRunes. A summary without findings yields one synthetic
// bullet so no slide renders empty.
func buildBullets(summary ContentSummary, topic string) []string {
	candidates := summary.Findings
	if len(candidates) == 0 {
		candidates = []string{"Highlight main point for " + topic}
	}
	if len(candidates) > MaxOutlineBullets {
		candidates = candidates[:MaxOutlineBullets]
	}
	bullets := make([]string, len(candidates))
	for i, text := range candidates {
		bullets[i] = extract.TruncateRunes(text, MaxBulletRunes)
	}
	return bullets
}

// pickVisual makes the deck-wide visual choice: chart when numeric data
// points exist, image otherwise. Applied uniformly to every slide in the
// plan, not per slide.
func pickVisual(summary ContentSummary) string {
	if len(summary.DataPoints) > 0 {
		return VisualChart
	}
	return VisualImage
}

// refineBullets asks the text generator to tighten the bullets. On any
// failure or empty response the original bullets are kept unchanged; there
// is no partial mutation.
func (g *Generator) refineBullets(ctx context.Context, title string, bullets []string) []string {
	prompt := fmt.Sprintf(
		"Rewrite these slide bullets to be concise (<=%d words each), %d bullets max.\nTitle: %s\nBullets:\n- %s",
		refineBulletWords, MaxOutlineBullets, title, strings.Join(bullets, "\n- "))

	cctx, cancel := g.remoteContext(ctx)
	defer cancel()

	text, err := g.text.Generate(cctx, prompt)
	if err != nil {
		g.log.Warn().Err(err).Str("slide", title).Msg("bullet refinement failed")
		return bullets
	}

	var refined []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-* "))
		if line == "" {
			continue
		}
		refined = append(refined, line)
		if len(refined) == MaxOutlineBullets {
			break
		}
	}
	if len(refined) == 0 {
		return bullets
	}
	return refined
}

// mergeTheme overlays style preferences on the default theme, key by key.
// Unknown keys pass through untouched for the renderer to consume.
func mergeTheme(prefs map[string]string) map[string]string {
	theme := DefaultTheme()
	for key, value := range prefs {
		theme[key] = value
	}
	return theme
}
