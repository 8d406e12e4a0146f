package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// TableRenderer: sink laporan tabular. Engine absensi hanya mengirim
// kolom + baris; renderer yang mengatur layout.
type TableRenderer interface {
	RenderTable(title string, columns []string, rows [][]string) ([]byte, error)
}

// PDFRenderer merender tabel jadi dokumen PDF A4 landscape.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer { return &PDFRenderer{} }

func (r *PDFRenderer) RenderTable(title string, columns []string, rows [][]string) ([]byte, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("render table: no columns")
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, title)
	pdf.Ln(14)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(columns))

	// Header
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range columns {
		pdf.CellFormat(colWidth, 8, col, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// Baris data
	pdf.SetFont("Arial", "", 9)
	for _, row := range rows {
		for i := 0; i < len(columns); i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(colWidth, 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 8)
	pdf.Cell(0, 8, fmt.Sprintf("Dibuat pada: %s", time.Now().Format("02 January 2006 15:04:05")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
