package sink

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Sam-M345/Scrape-Soccer-Teams/internal/valuation"
)

// RenderTable writes an aligned text table of the records. A positive width
// clamps the line width (typically the terminal width); team and owner cells
// are truncated with an ellipsis to fit.
func RenderTable(w io.Writer, schema valuation.Schema, records []valuation.Record, width int) error {
	headers, rows := tableCells(schema, records)

	cols := make([]int, len(headers))
	for i, h := range headers {
		cols[i] = len([]rune(h))
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := len([]rune(cell)); n > cols[i] {
				cols[i] = n
			}
		}
	}
	shrinkToWidth(headers, cols, width)

	printRow := func(cells []string) error {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = pad(truncate(cell, cols[i]), cols[i])
		}
		_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
		return err
	}

	if err := printRow(headers); err != nil {
		return err
	}
	rule := make([]string, len(cols))
	for i, n := range cols {
		rule[i] = strings.Repeat("-", n)
	}
	if _, err := fmt.Fprintln(w, strings.Join(rule, "  ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := printRow(row); err != nil {
			return err
		}
	}

	return writeSummary(w, records)
}

// writeSummary appends a one-line total with locale digit grouping for the
// whole-dollar amount.
func writeSummary(w io.Writer, records []valuation.Record) error {
	var total float64
	valued := 0
	for _, r := range records {
		if r.ValueUSDBln != nil {
			total += *r.ValueUSDBln
			valued++
		}
	}
	p := message.NewPrinter(language.English)
	if valued == 0 {
		_, err := p.Fprintf(w, "\n%d teams\n", len(records))
		return err
	}
	_, err := p.Fprintf(w, "\n%d teams, combined value $%d\n", len(records), int64(total*1e9))
	return err
}

func tableCells(schema valuation.Schema, records []valuation.Record) ([]string, [][]string) {
	if schema == valuation.SchemaReduced {
		headers := []string{"RANK", "TEAM", "VALUE"}
		rows := make([][]string, 0, len(records))
		for _, r := range records {
			rows = append(rows, []string{
				strconv.Itoa(r.Rank), r.Team, moneyCell(r.ValueUSDBln),
			})
		}
		return headers, rows
	}
	headers := []string{"RANK", "TEAM", "COUNTRY", "LEAGUE", "VALUE", "REVENUE", "EBITDA", "DEBT%", "OWNERS"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Rank), r.Team, r.Country, r.League,
			moneyCell(r.ValueUSDBln), moneyCell(r.RevenueUSDBln),
			moneyCell(r.EBITDAUSDBln), pctCell(r.DebtPctValue), r.Owners,
		})
	}
	return headers, rows
}

func moneyCell(p *float64) string {
	if p == nil {
		return "-"
	}
	if *p < 1 {
		return fmt.Sprintf("$%.0fM", *p*1000)
	}
	return fmt.Sprintf("$%.2fB", *p)
}

func pctCell(p *float64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatFloat(*p, 'f', -1, 64) + "%"
}

// shrinkToWidth narrows the team and owners columns until the row fits, never
// below a readable minimum.
func shrinkToWidth(headers []string, cols []int, width int) {
	if width <= 0 {
		return
	}
	const minCol = 8
	flexible := map[string]bool{"TEAM": true, "OWNERS": true}
	for rowWidth(cols) > width {
		widest := -1
		for i, h := range headers {
			if !flexible[h] || cols[i] <= minCol {
				continue
			}
			if widest < 0 || cols[i] > cols[widest] {
				widest = i
			}
		}
		if widest < 0 {
			return
		}
		cols[widest]--
	}
}

func rowWidth(cols []int) int {
	total := 0
	for _, n := range cols {
		total += n
	}
	return total + 2*(len(cols)-1)
}

func pad(s string, n int) string {
	if d := n - len([]rune(s)); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
