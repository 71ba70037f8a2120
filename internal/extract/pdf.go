package extract

import (
	"errors"
	"fmt"

	"github.com/tsawler/tabula"
)

// ErrNoPages indicates a PDF with no extractable pages.
var ErrNoPages = errors.New("document has no pages")

// PDFExcerpt extracts the first page of a PDF as a single line: newlines
// are collapsed to spaces and the result is capped at maxRunes.
func PDFExcerpt(path string, maxRunes int) (string, error) {
	extractor := tabula.Open(path)
	defer extractor.Close()

	pages, err := extractor.PageCount()
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	if pages == 0 {
		return "", ErrNoPages
	}

	text, _, err := extractor.Pages(1).Text()
	if err != nil {
		return "", fmt.Errorf("extracting pdf text: %w", err)
	}
	return TruncateRunes(collapseWhitespace(text), maxRunes), nil
}
