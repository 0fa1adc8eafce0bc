// Package app wires fetch, extraction, and the sinks into one run.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/Sam-M345/Scrape-Soccer-Teams/internal/cache"
	"github.com/Sam-M345/Scrape-Soccer-Teams/internal/fetch"
	"github.com/Sam-M345/Scrape-Soccer-Teams/internal/page"
	"github.com/Sam-M345/Scrape-Soccer-Teams/internal/sink"
	"github.com/Sam-M345/Scrape-Soccer-Teams/internal/valuation"
)

type App struct {
	cfg    Config
	client *fetch.Client
}

// New prepares the fetch client and applies cache invalidation controls.
func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	var httpCache *cache.HTTPCache
	if cfg.CacheDir != "" {
		if cfg.CacheClear {
			if err := cache.ClearDir(cfg.CacheDir); err != nil {
				log.Warn().Err(err).Msg("cache clear failed; continuing")
			}
		}
		if cfg.CacheMaxAge > 0 {
			// Best effort; a stale entry only costs a re-download.
			_, _ = cache.PurgeByAge(cfg.CacheDir, cfg.CacheMaxAge)
		}
		httpCache = &cache.HTTPCache{Dir: cfg.CacheDir}
	}

	client := &fetch.Client{
		UserAgent:         cfg.UserAgent,
		MaxAttempts:       cfg.MaxAttempts,
		PerRequestTimeout: cfg.Timeout,
		Cache:             httpCache,
		BypassCache:       cfg.CacheBypass,
	}
	return &App{cfg: cfg, client: client}, nil
}

// Run fetches the page, extracts the valuation table, and writes every
// configured sink. valuation.ErrNoTable and valuation.ErrNoRows pass through
// unwrapped so the CLI can apply its exit-code policy.
func (a *App) Run(ctx context.Context) error {
	body, contentType, err := a.client.Get(ctx, a.cfg.URL)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", a.cfg.URL, err)
	}
	log.Debug().Str("contentType", contentType).Int("bytes", len(body)).Msg("page fetched")

	if a.cfg.SnapshotPath != "" {
		if err := writeSnapshot(a.cfg.SnapshotPath, body); err != nil {
			return err
		}
		log.Info().Str("path", a.cfg.SnapshotPath).Int("bytes", len(body)).Msg("snapshot saved")
		return nil
	}

	headline := page.Headline(body)
	if headline != "" {
		log.Info().Str("headline", headline).Msg("article")
	}

	schema, err := a.cfg.ResolvedSchema()
	if err != nil {
		return err
	}
	res, err := valuation.Extract(body, schema)
	if err != nil {
		return err
	}
	log.Info().Int("records", len(res.Records)).Int("skipped", res.RowsSkipped).
		Stringer("schema", schema).Msg("table extracted")

	out, err := os.Create(a.cfg.OutPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := sink.WriteCSV(out, schema, res.Records); err != nil {
		out.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}
	log.Info().Str("path", a.cfg.OutPath).Msg("csv written")

	if a.cfg.SQLitePath != "" {
		if err := sink.ArchiveSQLite(a.cfg.SQLitePath, nowUTC(), a.cfg.URL, res.Records); err != nil {
			return fmt.Errorf("archive sqlite: %w", err)
		}
		log.Info().Str("path", a.cfg.SQLitePath).Msg("sqlite archived")
	}
	if a.cfg.PDFPath != "" {
		title := headline
		if title == "" {
			title = "Soccer Team Valuations"
		}
		if err := sink.WritePDF(a.cfg.PDFPath, title, schema, res.Records); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("path", a.cfg.PDFPath).Msg("pdf written")
	}

	if !a.cfg.Quiet {
		if err := sink.RenderTable(os.Stdout, schema, res.Records, a.cfg.RenderWidth); err != nil {
			return fmt.Errorf("render table: %w", err)
		}
	}

	return a.writeManifest(headline, body, schema, res)
}

func writeSnapshot(path string, body []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir snapshot dir: %w", err)
		}
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
