package sink

import (
	"bytes"
	"database/sql"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Sam-M345/Scrape-Soccer-Teams/internal/valuation"
)

func f(v float64) *float64 { return &v }

func sampleRecords() []valuation.Record {
	return []valuation.Record{
		{
			Rank: 1, Team: "Real Madrid", Country: "Spain", League: "La Liga",
			ValueUSDBln: f(6.7), RevenueUSDBln: f(1.13), EBITDAUSDBln: f(0.277),
			DebtPctValue: f(1), Owners: "Club members",
		},
		{
			Rank: 2, Team: "Barcelona", Country: "Spain", League: "La Liga",
			ValueUSDBln: f(6.0), DebtPctValue: nil, Owners: "Club members",
		},
	}
}

func TestWriteCSV_FullSchema(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, valuation.SchemaFull, sampleRecords()); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	wantHeader := "rank,team,country,league,value_usd_bln,revenue_usd_bln,ebitda_usd_bln,debt_pct_value,owners"
	if got := strings.Join(rows[0], ","); got != wantHeader {
		t.Fatalf("unexpected header: %s", got)
	}
	if rows[1][4] != "6.7" {
		t.Fatalf("expected value 6.7, got %q", rows[1][4])
	}
	// Absent numerics serialize as empty cells.
	if rows[2][5] != "" || rows[2][7] != "" {
		t.Fatalf("expected empty cells for absent values, got %q %q", rows[2][5], rows[2][7])
	}
}

func TestWriteCSV_ReducedSchema(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, valuation.SchemaReduced, sampleRecords()); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got := strings.Join(rows[0], ","); got != "rank,team,valuation_usd_bln" {
		t.Fatalf("unexpected header: %s", got)
	}
	if len(rows[1]) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(rows[1]))
	}
}

func TestArchiveSQLite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "valuations.sqlite")
	runAt := time.Date(2025, 5, 6, 12, 0, 0, 0, time.UTC)
	if err := ArchiveSQLite(path, runAt, "https://example.com/article", sampleRecords()); err != nil {
		t.Fatalf("archive: %v", err)
	}
	// Second run appends rather than replaces.
	if err := ArchiveSQLite(path, runAt.Add(24*time.Hour), "https://example.com/article", sampleRecords()); err != nil {
		t.Fatalf("second archive: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM valuations`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4 rows across two runs, got %d", count)
	}

	var revenue sql.NullFloat64
	err = db.QueryRow(`SELECT revenue_usd_bln FROM valuations WHERE team = 'Barcelona' LIMIT 1`).Scan(&revenue)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if revenue.Valid {
		t.Fatalf("expected NULL revenue for Barcelona, got %v", revenue.Float64)
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTable(&buf, valuation.SchemaFull, sampleRecords(), 0); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Real Madrid") || !strings.Contains(out, "$6.70B") {
		t.Fatalf("expected table content, got:\n%s", out)
	}
	if !strings.Contains(out, "$277M") {
		t.Fatalf("expected sub-billion value in millions, got:\n%s", out)
	}
	// Combined value 12.7B rendered with digit grouping.
	if !strings.Contains(out, "12,700,000,000") {
		t.Fatalf("expected grouped combined value, got:\n%s", out)
	}
}

func TestRenderTable_ClampsWidth(t *testing.T) {
	records := []valuation.Record{{
		Rank: 1, Team: strings.Repeat("Very Long Team Name ", 5),
		ValueUSDBln: f(1.0), Owners: strings.Repeat("Owner ", 20),
	}}
	var buf bytes.Buffer
	if err := RenderTable(&buf, valuation.SchemaFull, records, 100); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "1 ") && len([]rune(line)) > 100 {
			t.Fatalf("data line exceeds width: %d chars", len([]rune(line)))
		}
	}
}

func TestWritePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "valuations.pdf")
	err := WritePDF(path, "Global Soccer Team Valuations", valuation.SchemaFull, sampleRecords())
	if err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected non-empty pdf")
	}
}
