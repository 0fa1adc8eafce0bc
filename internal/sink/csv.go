// Package sink serializes extracted valuation records: CSV for downstream
// consumption, a SQLite archive of runs, and human-readable text and PDF
// tables.
package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Sam-M345/Scrape-Soccer-Teams/internal/valuation"
)

// WriteCSV writes a header row followed by one record per line in the
// schema's fixed column order. Absent numeric fields serialize as empty
// cells, never as "NaN" or a sentinel string.
func WriteCSV(w io.Writer, schema valuation.Schema, records []valuation.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(schema.Columns()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(csvRow(schema, r)); err != nil {
			return fmt.Errorf("write record %d: %w", r.Rank, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(schema valuation.Schema, r valuation.Record) []string {
	if schema == valuation.SchemaReduced {
		return []string{
			strconv.Itoa(r.Rank),
			r.Team,
			formatFloat(r.ValueUSDBln),
		}
	}
	return []string{
		strconv.Itoa(r.Rank),
		r.Team,
		r.Country,
		r.League,
		formatFloat(r.ValueUSDBln),
		formatFloat(r.RevenueUSDBln),
		formatFloat(r.EBITDAUSDBln),
		formatFloat(r.DebtPctValue),
		r.Owners,
	}
}

func formatFloat(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
