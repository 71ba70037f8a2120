package deckgen

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestEstimateSlideCount(t *testing.T) {
	tests := []struct {
		name     string
		summary  ContentSummary
		duration int
		want     int
	}{
		{
			name:     "duration wins",
			summary:  ContentSummary{Findings: []string{"a", "b"}},
			duration: 10,
			want:     10,
		},
		{
			name:    "empty content floors at minimum",
			summary: ContentSummary{},
			want:    MinAutoSlides,
		},
		{
			name:    "moderate content uses complexity",
			summary: ContentSummary{Findings: []string{"a", "b", "c", "d", "e"}},
			want:    5,
		},
		{
			name: "heavy content caps at maximum",
			summary: ContentSummary{
				Findings: make([]string, 20),
			},
			want: MaxAutoSlides,
		},
		{
			name:    "topics count toward complexity",
			summary: ContentSummary{Topics: []string{"a", "b", "c", "d"}},
			want:    4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := estimateSlideCount(tt.summary, tt.duration); got != tt.want {
				t.Errorf("estimateSlideCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOutline_DurationAndTopics(t *testing.T) {
	g := NewGenerator()
	summary := ContentSummary{
		Topics:     []string{"Alpha", "Beta"},
		Findings:   []string{"Detected input file: alpha.csv", "Table alpha.csv: 3 rows x 2 columns"},
		DataPoints: []string{"revenue mean 200.00"},
		Sources:    []string{"/abs/alpha.csv"},
	}

	plan := g.Outline(context.Background(), summary, OutlineOptions{DurationMinutes: 2})

	if len(plan.Slides) != 2 {
		t.Fatalf("slides = %d, want 2", len(plan.Slides))
	}
	if plan.Slides[0].Title != "Alpha"+titleSuffix {
		t.Errorf("slide 0 title = %q", plan.Slides[0].Title)
	}
	if plan.Slides[1].Title != "Beta"+titleSuffix {
		t.Errorf("slide 1 title = %q", plan.Slides[1].Title)
	}
	for i, slide := range plan.Slides {
		if slide.Visual != VisualChart {
			t.Errorf("slide %d visual = %q, want chart (data points exist)", i, slide.Visual)
		}
		if len(slide.Sources) != 1 || slide.Sources[0] != "/abs/alpha.csv" {
			t.Errorf("slide %d sources = %v", i, slide.Sources)
		}
	}

	// Theme defaults apply when no style prefs are given.
	if plan.Theme[ThemeKeyRatio] != DefaultRatio ||
		plan.Theme[ThemeKeyFont] != DefaultFont ||
		plan.Theme[ThemeKeyPalette] != DefaultPalette {
		t.Errorf("theme = %v, want defaults", plan.Theme)
	}
}

func TestOutline_TopicCycling(t *testing.T) {
	g := NewGenerator()
	summary := ContentSummary{
		Topics:   []string{"Solo"},
		Findings: []string{"one finding"},
	}

	plan := g.Outline(context.Background(), summary, OutlineOptions{DurationMinutes: 3})

	if len(plan.Slides) != 3 {
		t.Fatalf("slides = %d, want 3", len(plan.Slides))
	}
	for i, slide := range plan.Slides {
		if slide.Title != "Solo"+titleSuffix {
			t.Errorf("slide %d title = %q, want cycled topic", i, slide.Title)
		}
	}
}

func TestOutline_NoTopicsFallsBack(t *testing.T) {
	g := NewGenerator()

	plan := g.Outline(context.Background(), ContentSummary{}, OutlineOptions{DurationMinutes: 1})

	if len(plan.Slides) != 1 || plan.Slides[0].Title != "Overview"+titleSuffix {
		t.Errorf("slides = %+v, want one Overview slide", plan.Slides)
	}
	if plan.Slides[0].Visual != VisualImage {
		t.Errorf("visual = %q, want image (no data points)", plan.Slides[0].Visual)
	}
}

func TestOutline_ThemeMerge(t *testing.T) {
	g := NewGenerator()

	plan := g.Outline(context.Background(), ContentSummary{}, OutlineOptions{
		StylePrefs: map[string]string{
			ThemeKeyPalette: "light",
			"watermark":     "draft",
		},
	})

	if plan.Theme[ThemeKeyPalette] != "light" {
		t.Errorf("palette = %q, want override", plan.Theme[ThemeKeyPalette])
	}
	if plan.Theme[ThemeKeyFont] != DefaultFont {
		t.Errorf("font = %q, want default preserved", plan.Theme[ThemeKeyFont])
	}
	if plan.Theme["watermark"] != "draft" {
		t.Errorf("unknown key not passed through: %v", plan.Theme)
	}
}

func TestBuildBullets(t *testing.T) {
	t.Run("empty findings yield synthetic bullet", func(t *testing.T) {
		bullets := buildBullets(ContentSummary{}, "Alpha")
		if len(bullets) != 1 || bullets[0] != "Highlight main point for Alpha" {
			t.Errorf("bullets = %v", bullets)
		}
	})

	t.Run("capped at limit", func(t *testing.T) {
		summary := ContentSummary{Findings: []string{"a", "b", "c", "d", "e", "f", "g"}}
		bullets := buildBullets(summary, "Alpha")
		if len(bullets) != MaxOutlineBullets {
			t.Errorf("bullets = %d, want %d", len(bullets), MaxOutlineBullets)
		}
	})

	t.Run("long findings truncated", func(t *testing.T) {
		long := strings.Repeat("x", MaxBulletRunes+50)
		bullets := buildBullets(ContentSummary{Findings: []string{long}}, "Alpha")
		if got := len([]rune(bullets[0])); got != MaxBulletRunes {
			t.Errorf("bullet length = %d, want %d", got, MaxBulletRunes)
		}
	})
}

func TestRefineBullets(t *testing.T) {
	original := []string{"first original bullet", "second original bullet"}

	tests := []struct {
		name string
		text *mockTextGenerator
		want []string
	}{
		{
			name: "parsed from reply",
			text: &mockTextGenerator{reply: "- One\n* Two\n\n  - Three  "},
			want: []string{"One", "Two", "Three"},
		},
		{
			name: "failure keeps originals",
			text: &mockTextGenerator{err: errors.New("rate limited")},
			want: original,
		},
		{
			name: "blank reply keeps originals",
			text: &mockTextGenerator{reply: "\n\n"},
			want: original,
		},
		{
			name: "overflow capped at limit",
			text: &mockTextGenerator{reply: "- a\n- b\n- c\n- d\n- e\n- f\n- g"},
			want: []string{"a", "b", "c", "d", "e"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(WithTextGenerator(tt.text))

			got := g.refineBullets(context.Background(), "Alpha: key takeaway", original)

			if len(got) != len(tt.want) {
				t.Fatalf("bullets = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("bullet %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestOutline_RefineRequiresOptIn(t *testing.T) {
	text := &mockTextGenerator{reply: "- Refined"}
	g := NewGenerator(WithTextGenerator(text))
	summary := ContentSummary{Topics: []string{"Alpha"}, Findings: []string{"raw finding"}}

	plan := g.Outline(context.Background(), summary, OutlineOptions{DurationMinutes: 1})

	if text.called {
		t.Error("text generator called without Refine opt-in")
	}
	if plan.Slides[0].Bullets[0] != "raw finding" {
		t.Errorf("bullets = %v, want originals", plan.Slides[0].Bullets)
	}
}
