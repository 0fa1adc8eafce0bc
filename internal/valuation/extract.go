package valuation

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// ErrNoTable means the document contains no table element at all, so
// extraction could not even start.
var ErrNoTable = errors.New("no table found in document")

// ErrNoRows means a table was found but no row survived validation. Kept
// distinct from ErrNoTable so callers can tell a page redesign from a page
// that merely lost its data.
var ErrNoRows = errors.New("no rows survived validation")

// Extract locates the first table in the markup and normalizes its rows into
// records. Row-level problems (too few cells, unparseable rank, duplicate
// rank or team) never abort the run; only a missing table or zero surviving
// rows are call-level failures.
func Extract(markup []byte, schema Schema) (Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return Result{}, fmt.Errorf("parse markup: %w", err)
	}

	// First table in document order; the article has exactly one.
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return Result{}, ErrNoTable
	}

	// Prefer an explicit tbody; fall back to the table itself when rows are
	// direct children.
	container := table.Find("tbody").First()
	if container.Length() == 0 {
		container = table
	}

	var (
		records   []Record
		skipped   int
		seenRanks = make(map[int]struct{})
		seenTeams = make(map[string]struct{})
	)

	container.Find("tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < schema.minCells() {
			// Row 0 is the header; short cell counts there are expected.
			if i > 0 {
				skipped++
				log.Debug().Int("row", i).Int("cells", cells.Length()).
					Msg("row skipped: too few cells")
			}
			return
		}
		text := func(idx int) string {
			return strings.TrimSpace(cells.Eq(idx).Text())
		}

		rank, ok := parseRank(text(0))
		if !ok {
			// A header row inside tbody fails here; stay quiet for row 0.
			if i > 0 {
				skipped++
				log.Debug().Int("row", i).Str("cell", text(0)).
					Msg("row skipped: unparseable rank")
			}
			return
		}
		team := text(1)
		if team == "" {
			if i > 0 {
				skipped++
				log.Debug().Int("row", i).Msg("row skipped: empty team name")
			}
			return
		}

		if _, dup := seenRanks[rank]; dup {
			log.Debug().Int("rank", rank).Str("team", team).Msg("duplicate rank dropped")
			return
		}
		if _, dup := seenTeams[strings.ToLower(team)]; dup {
			log.Debug().Int("rank", rank).Str("team", team).Msg("duplicate team dropped")
			return
		}

		rec := Record{Rank: rank, Team: team}
		switch schema {
		case SchemaReduced:
			rec.ValueUSDBln = ParseMonetaryBillions(text(4))
		default:
			rec.Country = text(2)
			rec.League = text(3)
			rec.ValueUSDBln = ParseMonetaryBillions(text(4))
			rec.RevenueUSDBln = ParseMonetaryBillions(text(5))
			rec.EBITDAUSDBln = ParseMonetaryBillions(text(6))
			rec.DebtPctValue = ParsePercent(text(7))
			rec.Owners = text(8)
		}

		seenRanks[rank] = struct{}{}
		seenTeams[strings.ToLower(team)] = struct{}{}
		records = append(records, rec)
	})

	records = finalize(records)
	if len(records) == 0 {
		return Result{RowsSkipped: skipped}, ErrNoRows
	}
	return Result{Records: records, RowsSkipped: skipped}, nil
}

// finalize sorts by rank and re-applies duplicate suppression globally,
// keep-first by rank and then by team. The per-row seen-set check already
// guarantees uniqueness; this pass is the consistency check that both
// mechanisms agree on the same output.
func finalize(records []Record) []Record {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Rank < records[j].Rank
	})
	out := make([]Record, 0, len(records))
	ranks := make(map[int]struct{}, len(records))
	teams := make(map[string]struct{}, len(records))
	for _, r := range records {
		if _, ok := ranks[r.Rank]; ok {
			continue
		}
		key := strings.ToLower(r.Team)
		if _, ok := teams[key]; ok {
			continue
		}
		ranks[r.Rank] = struct{}{}
		teams[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
