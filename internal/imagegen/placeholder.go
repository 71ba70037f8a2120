// Package imagegen produces slide visuals through remote backends, with a
// locally drawn placeholder as the universal fallback.
//
// Every backend writes a concrete PNG into the assets directory even when
// the remote call fails, so downstream assembly always has an asset path
// to embed.
package imagegen

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"
	"unicode"
)

// Placeholder dimensions.
const (
	placeholderWidth  = 640
	placeholderHeight = 480
)

// maxFilenameRunes caps the prompt-derived portion of asset filenames.
const maxFilenameRunes = 40

// placeholderFill matches the dark deck palette.
var placeholderFill = color.RGBA{R: 0x1E, G: 0x29, B: 0x3B, A: 0xFF}

// placeholderBorder frames the fill so the image reads as intentional.
var placeholderBorder = color.RGBA{R: 0x94, G: 0xA3, B: 0xB8, A: 0xFF}

// SafeFilename derives a filesystem-safe PNG filename from a prompt:
// alphanumerics are kept, everything else becomes an underscore, capped at
// maxFilenameRunes.
func SafeFilename(prompt string) string {
	var b strings.Builder
	for _, r := range prompt {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	token := b.String()
	if len([]rune(token)) > maxFilenameRunes {
		token = string([]rune(token)[:maxFilenameRunes])
	}
	if token == "" {
		token = "image"
	}
	return token + ".png"
}

// WritePlaceholder draws a solid framed rectangle and writes it to path.
func WritePlaceholder(path string) error {
	img := image.NewRGBA(image.Rect(0, 0, placeholderWidth, placeholderHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: placeholderBorder}, image.Point{}, draw.Src)
	inner := image.Rect(4, 4, placeholderWidth-4, placeholderHeight-4)
	draw.Draw(img, inner, &image.Uniform{C: placeholderFill}, image.Point{}, draw.Src)

	f, err := os.Create(path) // #nosec G304 -- caller-resolved asset path
	if err != nil {
		return fmt.Errorf("creating placeholder: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding placeholder: %w", err)
	}
	return f.Close()
}
