package app

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Sam-M345/Scrape-Soccer-Teams/internal/valuation"
)

// runManifest captures high-level run details that aid reproducibility: the
// exact page digest a CSV was produced from, and how many rows made it.
type runManifest struct {
	URL         string    `json:"url"`
	Headline    string    `json:"headline,omitempty"`
	PageSHA256  string    `json:"page_sha256"`
	PageBytes   int       `json:"page_bytes"`
	Schema      string    `json:"schema"`
	Records     int       `json:"records"`
	RowsSkipped int       `json:"rows_skipped"`
	Output      string    `json:"output"`
	GeneratedAt time.Time `json:"generated_at"`
}

func nowUTC() time.Time { return time.Now().UTC() }

// writeManifest drops manifest.json next to the CSV output. Failures are
// logged, not fatal: the CSV is the deliverable.
func (a *App) writeManifest(headline string, body []byte, schema valuation.Schema, res valuation.Result) error {
	m := runManifest{
		URL:         a.cfg.URL,
		Headline:    headline,
		PageSHA256:  computeSHA256Hex(body),
		PageBytes:   len(body),
		Schema:      schema.String(),
		Records:     len(res.Records),
		RowsSkipped: res.RowsSkipped,
		Output:      a.cfg.OutPath,
		GeneratedAt: nowUTC(),
	}
	path := manifestPath(a.cfg.OutPath)
	if err := writeJSON(path, m); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("manifest write failed")
		return nil
	}
	log.Debug().Str("path", path).Msg("manifest written")
	return nil
}

func manifestPath(outPath string) string {
	dir := filepath.Dir(outPath)
	base := strings.TrimSuffix(filepath.Base(outPath), filepath.Ext(outPath))
	return filepath.Join(dir, base+".manifest.json")
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// computeSHA256Hex returns a lowercase hex-encoded SHA-256 of the content.
func computeSHA256Hex(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}
