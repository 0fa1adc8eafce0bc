package sink

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/Sam-M345/Scrape-Soccer-Teams/internal/valuation"
)

// WritePDF renders the records as a simple landscape table. Layout is
// intentionally minimal: fixed column widths, one row per record.
func WritePDF(path string, title string, schema valuation.Schema, records []valuation.Record) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	if title != "" {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	headers, rows := tableCells(schema, records)
	widths := columnWidthsMM(schema)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		for i, cell := range row {
			pdf.CellFormat(widths[i], 6, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.OutputFileAndClose(path)
}

func columnWidthsMM(schema valuation.Schema) []float64 {
	if schema == valuation.SchemaReduced {
		return []float64{15, 80, 25}
	}
	// rank, team, country, league, value, revenue, ebitda, debt%, owners
	return []float64{12, 48, 26, 36, 22, 22, 22, 16, 70}
}
