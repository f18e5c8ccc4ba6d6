package services

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// TextExtractor converts a paginated document into plain text. An error is
// returned only when the document cannot be opened at all; a document that
// opens but yields no text returns the empty string.
type TextExtractor interface {
	ExtractText(filePath string) (string, error)
}

type pdfTextExtractor struct {
	ocr    OCRService
	logger *zap.Logger
}

func NewPDFTextExtractor(ocr OCRService, logger *zap.Logger) TextExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &pdfTextExtractor{ocr: ocr, logger: logger}
}

// ExtractText implements TextExtractor. Each page is read from the PDF text
// layer first; pages without one (scanned images) fall back to OCR. Pages
// that yield nothing from either method are skipped, the rest are joined
// with newlines.
func (e *pdfTextExtractor) ExtractText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var pages []string
	totalPages := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		text := e.extractPage(r, pageIndex)
		if strings.TrimSpace(text) == "" {
			text = e.recognizePage(filePath, pageIndex)
		}
		if strings.TrimSpace(text) != "" {
			pages = append(pages, text)
		}
	}

	return strings.Join(pages, "\n"), nil
}

func (e *pdfTextExtractor) extractPage(r *pdf.Reader, pageIndex int) string {
	page := r.Page(pageIndex)
	if page.V.IsNull() {
		return ""
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		e.logger.Debug("text layer extraction failed",
			zap.Int("page", pageIndex), zap.Error(err))
		return ""
	}

	return text
}

func (e *pdfTextExtractor) recognizePage(filePath string, pageIndex int) string {
	if e.ocr == nil {
		return ""
	}

	text, err := e.ocr.RecognizePage(filePath, pageIndex-1)
	if err != nil {
		e.logger.Warn("ocr fallback failed",
			zap.Int("page", pageIndex), zap.Error(err))
		return ""
	}

	return text
}

// CleanText trims each line and drops empty ones, normalizing extracted
// page text before downstream scans.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	var cleaned []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}

	return strings.Join(cleaned, "\n")
}
