// Package valuation extracts the team-valuation table from a fetched article
// page and normalizes it into records. Header detection is positional: the
// first table row is always treated as the header, so a page with preamble
// rows before the header would be misclassified.
package valuation

// Schema selects the column layout expected in the source table.
type Schema int

const (
	// SchemaFull is the nine-column layout of the current article:
	// rank, team, country, league, value, revenue, EBITDA, debt %, owners.
	SchemaFull Schema = iota
	// SchemaReduced is the early three-field layout: rank and team from the
	// first two cells, valuation from the fifth.
	SchemaReduced
)

// minCells is the smallest cell count a data row must have under the schema.
func (s Schema) minCells() int {
	if s == SchemaReduced {
		return 5
	}
	return 9
}

// Columns returns the output column order for the schema, which is also the
// CSV header order.
func (s Schema) Columns() []string {
	if s == SchemaReduced {
		return []string{"rank", "team", "valuation_usd_bln"}
	}
	return []string{
		"rank", "team", "country", "league",
		"value_usd_bln", "revenue_usd_bln", "ebitda_usd_bln",
		"debt_pct_value", "owners",
	}
}

func (s Schema) String() string {
	if s == SchemaReduced {
		return "reduced"
	}
	return "full"
}

// Record is one normalized table row. Numeric fields are nil when the source
// cell held a sentinel ("N/A", "-") or text that could not be parsed; a nil
// field never discards an otherwise valid record.
type Record struct {
	Rank    int
	Team    string
	Country string
	League  string
	// Monetary fields are expressed in billions of US dollars.
	ValueUSDBln   *float64
	RevenueUSDBln *float64
	EBITDAUSDBln  *float64
	// DebtPctValue is debt as a percentage of value on a 0-100 scale.
	DebtPctValue *float64
	Owners       string
}

// Result is the outcome of one extraction run.
type Result struct {
	Records []Record
	// RowsSkipped counts data rows rejected for too few cells or an
	// unparseable rank. The header row is never counted.
	RowsSkipped int
}
