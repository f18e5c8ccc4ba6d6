package services

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
)

// OCRService recognizes text on a single document page. Used as a fallback
// for scanned pages that carry no extractable text layer.
type OCRService interface {
	RecognizePage(filePath string, pageIndex int) (string, error)
}

type tesseractOCRService struct {
	dpi float64
}

// NewTesseractOCRService rasterizes pages with MuPDF at the given resolution
// and runs tesseract over the resulting image.
func NewTesseractOCRService(dpi float64) OCRService {
	if dpi <= 0 {
		dpi = 300
	}
	return &tesseractOCRService{dpi: dpi}
}

// RecognizePage implements OCRService. pageIndex is zero-based.
func (o *tesseractOCRService) RecognizePage(filePath string, pageIndex int) (string, error) {
	doc, err := fitz.New(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open document for rasterizing: %w", err)
	}
	defer doc.Close()

	img, err := doc.ImageDPI(pageIndex, o.dpi)
	if err != nil {
		return "", fmt.Errorf("failed to rasterize page %d: %w", pageIndex, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode page image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to load page image into tesseract: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr failed on page %d: %w", pageIndex, err)
	}

	return text, nil
}
