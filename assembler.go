package deckgen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-deckgen/internal/fileutil"
	"github.com/alnah/go-deckgen/internal/pptx"
)

// assemblyNotes is the fixed status note returned with every successful run.
const assemblyNotes = "Generated deck with rotating split/stacked/focus layouts; markdown preview written alongside for quick inspection."

// deckTitle is recorded in the package's core properties.
const deckTitle = "Deckgen Presentation"

// palette is a built-in color scheme. Colors are RRGGBB hex.
type palette struct {
	background string
	title      string
	body       string
	accent     string
}

// Built-in palettes: dark slate/amber (default and fallback) and light.
var (
	paletteSlateAmber = palette{
		background: "0F172A",
		title:      "F59E0B",
		body:       "E2E8F0",
		accent:     "94A3B8",
	}
	paletteLight = palette{
		background: "FFFFFF",
		title:      "1F2937",
		body:       "334155",
		accent:     "64748B",
	}
)

// resolvePalette maps a theme palette name to a built-in palette.
// Unrecognized names fall back to the dark palette.
func resolvePalette(name string) palette {
	if name == "light" {
		return paletteLight
	}
	return paletteSlateAmber
}

// Font sizes in points.
const (
	titleFontSize       = 32
	bodyFontSize        = 22
	emphasisFontSize    = 24
	placeholderFontSize = 18
	footerFontSize      = 12
)

// Assemble renders the slide drafts into a PPTX deck at outputPath and an
// unconditional markdown preview at the same stem with a .md extension.
//
// Assembly is pure rendering: all layout decisions were made upstream. The
// theme supplies the font family and palette name; an unrecognized palette
// falls back to the dark built-in.
func (g *Generator) Assemble(drafts []SlideDraft, outputPath string, theme map[string]string) (*AssemblyResult, error) {
	if len(drafts) == 0 {
		return nil, ErrNoDrafts
	}
	if outputPath == "" {
		return nil, ErrEmptyOutput
	}

	output, err := filepath.Abs(outputPath)
	if err != nil {
		output = outputPath
	}
	if err := fileutil.EnsureParentDir(output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateOutput, err)
	}

	font := theme[ThemeKeyFont]
	if font == "" {
		font = DefaultFont
	}
	pal := resolvePalette(theme[ThemeKeyPalette])

	pres := pptx.New(pptx.WithFont(font), pptx.WithTitle(deckTitle))
	for _, draft := range drafts {
		g.addSlide(pres, draft, pal)
	}
	if err := pres.WriteFile(output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderDeck, err)
	}

	previewPath := fileutil.WithExtension(output, ".md")
	if err := os.WriteFile(previewPath, []byte(RenderPreview(drafts)), 0o600); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWritePreview, err)
	}

	return &AssemblyResult{
		RequestedOutput: output,
		PreviewPath:     previewPath,
		SlidesBuilt:     len(drafts),
		Notes:           assemblyNotes,
	}, nil
}

// addSlide renders one draft using its layout's fixed geometry.
func (g *Generator) addSlide(pres *pptx.Presentation, draft SlideDraft, pal palette) {
	slide := pres.AddSlide()
	slide.SetBackground(pal.background)

	margin := pptx.Inches(0.6)
	gap := pptx.Inches(0.4)
	bodyTop := margin + pptx.Inches(1.0)
	bodyWidth := pres.Width() - 2*margin
	bodyHeight := pres.Height() - bodyTop - pptx.Inches(1.2)

	slide.AddTextBox(pptx.TextBox{
		Box: pptx.Box{Left: margin, Top: margin, Width: bodyWidth, Height: pptx.Inches(1.0)},
		Paragraphs: []pptx.Paragraph{
			{Text: draft.Title, Size: titleFontSize, Bold: true, Color: pal.title},
		},
	})

	switch draft.Layout {
	case LayoutStacked:
		g.addBullets(slide, draft.Bullets, pal,
			pptx.Box{Left: margin, Top: bodyTop, Width: bodyWidth, Height: bodyHeight * 55 / 100}, false)
		g.addAsset(slide, draft.Assets, pal,
			pptx.Box{Left: margin, Top: bodyTop + bodyHeight*60/100, Width: bodyWidth, Height: bodyHeight * 35 / 100})
	case LayoutFocus:
		g.addBullets(slide, draft.Bullets, pal,
			pptx.Box{Left: margin, Top: bodyTop + pptx.Inches(0.4), Width: bodyWidth, Height: bodyHeight * 80 / 100}, true)
	default: // LayoutSplit
		textWidth := (bodyWidth - gap) * 55 / 100
		g.addBullets(slide, draft.Bullets, pal,
			pptx.Box{Left: margin, Top: bodyTop, Width: textWidth, Height: bodyHeight}, false)
		g.addAsset(slide, draft.Assets, pal,
			pptx.Box{Left: margin + textWidth + gap, Top: bodyTop, Width: bodyWidth - textWidth - gap, Height: bodyHeight})
	}

	g.addFooter(slide, draft, pal, pres.Width(), pres.Height())
}

// addBullets renders the bullet list, substituting a single reminder line
// when the draft carries no bullets.
func (g *Generator) addBullets(slide *pptx.Slide, bullets []string, pal palette, box pptx.Box, emphasize bool) {
	if len(bullets) == 0 {
		bullets = []string{"Highlight key message"}
	}

	size := float64(bodyFontSize)
	if emphasize {
		size = emphasisFontSize
	}

	paras := make([]pptx.Paragraph, len(bullets))
	for i, bullet := range bullets {
		paras[i] = pptx.Paragraph{Text: bullet, Size: size, Bold: emphasize, Color: pal.body}
	}
	slide.AddTextBox(pptx.TextBox{Box: box, Paragraphs: paras})
}

// addAsset renders the first asset: the resolved image when present and
// readable, otherwise an italic placeholder caption.
func (g *Generator) addAsset(slide *pptx.Slide, assets []AssetSpec, pal palette, box pptx.Box) {
	if len(assets) == 0 {
		return
	}
	asset := assets[0]

	if asset.Path != "" && fileutil.FileExists(asset.Path) {
		if err := slide.AddPicture(asset.Path, box); err == nil {
			return
		} else {
			g.log.Warn().Err(err).Str("asset", asset.Path).Msg("embedding image failed; using placeholder")
		}
	}

	caption := asset.Prompt
	if caption == "" {
		caption = asset.Type + " placeholder"
	}
	slide.AddTextBox(pptx.TextBox{
		Box:    box,
		Anchor: "ctr",
		Paragraphs: []pptx.Paragraph{
			{Text: caption, Size: placeholderFontSize, Italic: true, Color: pal.accent},
		},
	})
}

// addFooter renders provenance and notes along the bottom edge.
func (g *Generator) addFooter(slide *pptx.Slide, draft SlideDraft, pal palette, width, height int64) {
	var paras []pptx.Paragraph
	if len(draft.Sources) > 0 {
		paras = append(paras, pptx.Paragraph{
			Text:  "Sources: " + joinComma(draft.Sources),
			Size:  footerFontSize,
			Color: pal.accent,
		})
	}
	if draft.Notes != "" {
		paras = append(paras, pptx.Paragraph{Text: draft.Notes, Size: footerFontSize, Color: pal.accent})
	}
	if len(paras) == 0 {
		return
	}

	slide.AddTextBox(pptx.TextBox{
		Box: pptx.Box{
			Left:   pptx.Inches(0.6),
			Top:    height - pptx.Inches(0.8),
			Width:  width - pptx.Inches(1.2),
			Height: pptx.Inches(0.6),
		},
		Paragraphs: paras,
	})
}
