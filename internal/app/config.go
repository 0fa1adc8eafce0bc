package app

import (
	"errors"
	"strings"
	"time"

	"github.com/Sam-M345/Scrape-Soccer-Teams/internal/valuation"
)

// DefaultURL is the article this tool was built around.
const DefaultURL = "https://www.cnbc.com/2025/05/05/cnbcs-official-global-soccer-team-valuations-2025.html"

// DefaultOutPath is where the CSV lands unless overridden.
const DefaultOutPath = "soccer_teams.csv"

// DefaultCacheDir holds fetched page snapshots between runs.
const DefaultCacheDir = ".teamvalues-cache"

// DefaultMaxAttempts covers one retry on a transient fetch error.
const DefaultMaxAttempts = 2

// Config holds runtime configuration for the application.
type Config struct {
	URL     string
	OutPath string
	// Schema is "full" or "reduced".
	Schema string

	// Fetch
	UserAgent   string
	Timeout     time.Duration
	MaxAttempts int

	// Cache
	CacheDir    string
	CacheMaxAge time.Duration
	CacheClear  bool
	CacheBypass bool

	// Optional sinks
	SQLitePath string
	PDFPath    string

	// SnapshotPath, when set, writes the raw fetched page there and stops
	// before extraction. Used to refresh test fixtures.
	SnapshotPath string

	// Behavior
	Quiet       bool
	Verbose     bool
	RenderWidth int
}

// ResolvedSchema maps the config string onto a valuation schema. Empty means
// full.
func (c Config) ResolvedSchema() (valuation.Schema, error) {
	switch strings.ToLower(strings.TrimSpace(c.Schema)) {
	case "", "full":
		return valuation.SchemaFull, nil
	case "reduced":
		return valuation.SchemaReduced, nil
	}
	return valuation.SchemaFull, errors.New("config: schema must be \"full\" or \"reduced\"")
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.URL) == "" {
		return errors.New("config: url is required")
	}
	if strings.TrimSpace(cfg.OutPath) == "" && strings.TrimSpace(cfg.SnapshotPath) == "" {
		return errors.New("config: output path is required")
	}
	if _, err := cfg.ResolvedSchema(); err != nil {
		return err
	}
	if cfg.Timeout < 0 || cfg.MaxAttempts < 0 {
		return errors.New("config: negative limits are not allowed")
	}
	return nil
}
