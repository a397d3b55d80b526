package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/rubayatk-tech/meat-donation-service/internal/domain"
)

var pdfColumnWidths = []float64{40, 32, 52, 26, 26, 36, 40}

// RenderPDF produces the donation table as a PDF document: one bold header
// row on a grey band, grid lines, left-aligned middle-anchored cells.
func RenderPDF(donations []domain.Donation) ([]byte, error) {
	rows := BuildRows(donations)

	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetCellMargin(2)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(211, 211, 211)
	for i, title := range rows[0] {
		pdf.CellFormat(pdfColumnWidths[i], 9, title, "1", 0, "LM", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows[1:] {
		for i, cell := range row {
			pdf.CellFormat(pdfColumnWidths[i], 8, cell, "1", 0, "LM", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
