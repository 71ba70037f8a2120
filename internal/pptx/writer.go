// Package pptx writes minimal PPTX (Office Open XML Presentation) files.
//
// The writer emits the smallest part set PowerPoint accepts: presentation,
// one slide master, one blank layout, one theme, document properties, and
// the slides themselves. Slides hold absolutely positioned text boxes and
// pictures; all geometry is in EMUs.
package pptx

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// EMUPerInch is the OOXML English Metric Unit scale.
const EMUPerInch = 914400

// Inches converts inches to EMUs.
func Inches(in float64) int64 {
	return int64(in * EMUPerInch)
}

// Default canvas: 13.33" x 7.5" widescreen.
const (
	DefaultWidth  = 12192000
	DefaultHeight = 6858000
)

// defaultFontSize is used when a paragraph does not specify one.
const defaultFontSize = 18.0

// Sentinel errors for writer operations.
var (
	ErrNoSlides         = errors.New("pptx: presentation has no slides")
	ErrUnsupportedImage = errors.New("pptx: unsupported image format")
)

// Box positions a shape on the slide canvas, in EMUs.
type Box struct {
	Left, Top, Width, Height int64
}

// Paragraph is a single run of styled text.
type Paragraph struct {
	Text   string
	Size   float64 // points; 0 = defaultFontSize
	Bold   bool
	Italic bool
	Color  string // "RRGGBB"; empty = inherit
}

// TextBox is an absolutely positioned text shape.
type TextBox struct {
	Box        Box
	Paragraphs []Paragraph
	Font       string // typeface for all runs; empty = presentation font
	Anchor     string // vertical anchor: "" (top) or "ctr"
}

// picture is an embedded image with its bytes captured at add time.
type picture struct {
	box  Box
	ext  string // "png", "jpeg"
	data []byte
}

// Slide is one slide under construction.
type Slide struct {
	background string // "RRGGBB"; empty = no explicit background
	texts      []TextBox
	pictures   []picture
}

// Presentation is a deck under construction.
type Presentation struct {
	width  int64
	height int64
	font   string
	title  string
	slides []*Slide
}

// Option configures a Presentation.
type Option func(*Presentation)

// WithSize sets the slide canvas in EMUs.
func WithSize(width, height int64) Option {
	return func(p *Presentation) {
		p.width = width
		p.height = height
	}
}

// WithFont sets the default typeface for the theme and all runs.
func WithFont(name string) Option {
	return func(p *Presentation) {
		p.font = name
	}
}

// WithTitle sets the document title recorded in core properties.
func WithTitle(title string) Option {
	return func(p *Presentation) {
		p.title = title
	}
}

// New creates an empty widescreen presentation.
func New(opts ...Option) *Presentation {
	p := &Presentation{
		width:  DefaultWidth,
		height: DefaultHeight,
		font:   "Calibri",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Width returns the canvas width in EMUs.
func (p *Presentation) Width() int64 { return p.width }

// Height returns the canvas height in EMUs.
func (p *Presentation) Height() int64 { return p.height }

// AddSlide appends a new blank slide and returns it for population.
func (p *Presentation) AddSlide() *Slide {
	s := &Slide{}
	p.slides = append(p.slides, s)
	return s
}

// SetBackground fills the slide with a solid color.
func (s *Slide) SetBackground(color string) {
	s.background = color
}

// AddTextBox places a text shape on the slide.
func (s *Slide) AddTextBox(tb TextBox) {
	s.texts = append(s.texts, tb)
}

// AddPicture embeds an image file on the slide. The file is read
// immediately so a missing image fails at add time, not at write time.
func (s *Slide) AddPicture(path string, box Box) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "png":
	case "jpg", "jpeg":
		ext = "jpeg"
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedImage, filepath.Ext(path))
	}

	data, err := os.ReadFile(path) // #nosec G304 -- caller-resolved asset path
	if err != nil {
		return fmt.Errorf("pptx: reading image: %w", err)
	}

	s.pictures = append(s.pictures, picture{box: box, ext: ext, data: data})
	return nil
}

// WriteFile renders the deck to path.
func (p *Presentation) WriteFile(path string) error {
	f, err := os.Create(path) // #nosec G304 -- caller-resolved output path
	if err != nil {
		return fmt.Errorf("pptx: creating output: %w", err)
	}
	if err := p.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write renders the deck as a ZIP package to w.
func (p *Presentation) Write(w io.Writer) error {
	if len(p.slides) == 0 {
		return ErrNoSlides
	}

	zw := zip.NewWriter(w)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", p.contentTypesXML()},
		{"_rels/.rels", rootRelsXML},
		{"ppt/presentation.xml", p.presentationXML()},
		{"ppt/_rels/presentation.xml.rels", p.presentationRelsXML()},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML},
		{"ppt/theme/theme1.xml", p.themeXML()},
		{"docProps/core.xml", p.corePropsXML()},
		{"docProps/app.xml", p.appPropsXML()},
	}

	// Media parts are numbered deck-wide; slide rels reference them by index.
	mediaIndex := 1
	for i, slide := range p.slides {
		parts = append(parts,
			struct{ name, content string }{
				fmt.Sprintf("ppt/slides/slide%d.xml", i+1),
				p.slideXML(slide),
			},
			struct{ name, content string }{
				fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1),
				slideRelsXML(slide, mediaIndex),
			},
		)
		mediaIndex += len(slide.pictures)
	}

	for _, part := range parts {
		if err := writeZipPart(zw, part.name, []byte(part.content)); err != nil {
			return err
		}
	}

	mediaIndex = 1
	for _, slide := range p.slides {
		for _, pic := range slide.pictures {
			name := fmt.Sprintf("ppt/media/image%d.%s", mediaIndex, pic.ext)
			if err := writeZipPart(zw, name, pic.data); err != nil {
				return err
			}
			mediaIndex++
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("pptx: closing package: %w", err)
	}
	return nil
}

// writeZipPart stores one part in the package.
func writeZipPart(zw *zip.Writer, name string, content []byte) error {
	f, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("pptx: creating part %s: %w", name, err)
	}
	if _, err := f.Write(content); err != nil {
		return fmt.Errorf("pptx: writing part %s: %w", name, err)
	}
	return nil
}
