package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFProcessor pulls the text layer out of an uploaded acknowledgment PDF.
// Scanned (image-only) PDFs are out of scope; they surface as empty text.
type PDFProcessor interface {
	ExtractText(pdfData []byte) (string, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

func (p *pdfProcessor) ExtractText(pdfData []byte) (string, error) {
	conf := model.NewDefaultConfiguration()

	// Reject broken files up front; ledongthuc/pdf's errors further down
	// are much less descriptive.
	if err := api.Validate(bytes.NewReader(pdfData), conf); err != nil {
		return "", fmt.Errorf("invalid PDF: %w", err)
	}
	pages, err := api.PageCount(bytes.NewReader(pdfData), conf)
	if err != nil {
		return "", fmt.Errorf("failed to read page count: %w", err)
	}
	if pages == 0 {
		return "", fmt.Errorf("PDF has no pages")
	}

	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, _ := page.GetTextByRow()
		for _, row := range rows {
			for _, word := range row.Content {
				textBuilder.WriteString(word.S)
				textBuilder.WriteString(" ")
			}
			textBuilder.WriteString("\n")
		}
	}
	return textBuilder.String(), nil
}
