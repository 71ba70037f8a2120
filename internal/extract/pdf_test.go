package extract

import "testing"

func TestPDFExcerpt_CorruptFile(t *testing.T) {
	path := writeFile(t, "report.pdf", "not a pdf document")

	if _, err := PDFExcerpt(path, 200); err == nil {
		t.Error("PDFExcerpt() = nil, want error for a corrupt document")
	}
}

func TestPDFExcerpt_MissingFile(t *testing.T) {
	if _, err := PDFExcerpt("/nonexistent/report.pdf", 200); err == nil {
		t.Error("PDFExcerpt() = nil, want error for a missing file")
	}
}
