package sink

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Sam-M345/Scrape-Soccer-Teams/internal/valuation"
)

const createValuationsTable = `
CREATE TABLE IF NOT EXISTS valuations (
	run_at          TEXT NOT NULL,
	source_url      TEXT NOT NULL,
	rank            INTEGER NOT NULL,
	team            TEXT NOT NULL,
	country         TEXT,
	league          TEXT,
	value_usd_bln   REAL,
	revenue_usd_bln REAL,
	ebitda_usd_bln  REAL,
	debt_pct_value  REAL,
	owners          TEXT
)`

// ArchiveSQLite appends one run's records to the valuations table in the
// database at path, creating the file and table on first use. Absent numeric
// fields are stored as NULL.
func ArchiveSQLite(path string, runAt time.Time, sourceURL string, records []valuation.Record) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(createValuationsTable); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	stmt, err := db.Prepare(`INSERT INTO valuations
		(run_at, source_url, rank, team, country, league,
		 value_usd_bln, revenue_usd_bln, ebitda_usd_bln, debt_pct_value, owners)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	ts := runAt.UTC().Format(time.RFC3339)
	for _, r := range records {
		_, err := stmt.Exec(ts, sourceURL, r.Rank, r.Team, r.Country, r.League,
			nullFloat(r.ValueUSDBln), nullFloat(r.RevenueUSDBln),
			nullFloat(r.EBITDAUSDBln), nullFloat(r.DebtPctValue), r.Owners)
		if err != nil {
			return fmt.Errorf("insert rank %d: %w", r.Rank, err)
		}
	}
	return nil
}

func nullFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
