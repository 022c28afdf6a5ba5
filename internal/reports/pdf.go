package reports

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf/v2"
)

// PDF lays the document out as a downloadable A4 report: a heading, the
// summary box, then one bordered table per section.
func (d *Document) PDF() ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, fmt.Sprintf("Repair Shop - %s", d.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", d.GeneratedAt.Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Summary box
	if len(d.Summary) > 0 {
		pdf.SetFillColor(240, 240, 240)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(190, 8, "Summary", "1", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 11)
		for i, row := range d.Summary {
			border := "LR"
			if i == len(d.Summary)-1 {
				border = "LRB"
			}
			pdf.CellFormat(95, 7, row.Label, border, 0, "L", false, 0, "")
			pdf.CellFormat(95, 7, row.Value, border, 1, "R", false, 0, "")
		}
		pdf.Ln(5)
	}

	for _, table := range d.Tables {
		pdf.SetFillColor(240, 240, 240)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(190, 8, table.Title, "1", 1, "L", true, 0, "")

		if len(table.Header) == 0 {
			continue
		}
		colWidth := 190.0 / float64(len(table.Header))
		maxChars := int(colWidth / 2)

		// Table header
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(200, 200, 200)
		for i, h := range table.Header {
			br := 0
			if i == len(table.Header)-1 {
				br = 1
			}
			pdf.CellFormat(colWidth, 7, h, "1", br, "C", true, 0, "")
		}

		// Table rows with alternating shading
		pdf.SetFont("Arial", "", 9)
		for i, row := range table.Rows {
			if i%2 == 0 {
				pdf.SetFillColor(255, 255, 255)
			} else {
				pdf.SetFillColor(245, 245, 245)
			}
			for j := range table.Header {
				cell := ""
				if j < len(row) {
					cell = row[j]
				}
				if len(cell) > maxChars && maxChars > 3 {
					cell = cell[:maxChars-3] + "..."
				}
				br := 0
				if j == len(table.Header)-1 {
					br = 1
				}
				pdf.CellFormat(colWidth, 6, cell, "1", br, "L", true, 0, "")
			}
		}
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileName builds the export filename: {ReportTitle}_{ISODate}.pdf with
// whitespace replaced by underscores.
func (d *Document) FileName(ext string) string {
	title := strings.Join(strings.Fields(d.Title), "_")
	return fmt.Sprintf("%s_%s.%s", title, d.GeneratedAt.Format("2006-01-02"), ext)
}
