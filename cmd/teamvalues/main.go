package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/Sam-M345/Scrape-Soccer-Teams/internal/app"
	"github.com/Sam-M345/Scrape-Soccer-Teams/internal/valuation"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// .env values feed the env overlay below; a missing file is fine.
	_ = godotenv.Load()

	var (
		pageURL      string
		outPath      string
		schema       string
		configPath   string
		userAgent    string
		timeout      time.Duration
		maxAttempts  int
		cacheDir     string
		cacheMaxAge  time.Duration
		cacheClear   bool
		cacheBypass  bool
		sqlitePath   string
		pdfPath      string
		snapshotPath string
		quiet        bool
		verbose      bool
	)

	flag.StringVar(&pageURL, "url", app.DefaultURL, "Article URL holding the valuation table")
	flag.StringVar(&outPath, "out", app.DefaultOutPath, "Path to write the CSV output")
	flag.StringVar(&schema, "schema", "", "Table schema: full (default) or reduced")
	flag.StringVar(&configPath, "config", "", "Optional YAML/JSON config file")
	flag.StringVar(&userAgent, "ua", "", "Override the browser-style User-Agent")
	flag.DurationVar(&timeout, "timeout", 0, "Per-request timeout (default 10s)")
	flag.IntVar(&maxAttempts, "attempts", app.DefaultMaxAttempts, "Fetch attempts including the first")
	flag.StringVar(&cacheDir, "cache.dir", app.DefaultCacheDir, "Page cache directory")
	flag.DurationVar(&cacheMaxAge, "cache.maxAge", 0, "Max age for cache entries before purge (e.g. 24h); 0 disables")
	flag.BoolVar(&cacheClear, "cache.clear", false, "Clear cache directory before run")
	flag.BoolVar(&cacheBypass, "cache.bypass", false, "Fetch fresh, ignoring cached conditional headers")
	flag.StringVar(&sqlitePath, "sqlite", "", "Optional SQLite archive path; each run appends")
	flag.StringVar(&pdfPath, "pdf", "", "Optional PDF table output path")
	flag.StringVar(&snapshotPath, "snapshot", "", "Save the raw fetched page to this path and exit")
	flag.BoolVar(&quiet, "quiet", false, "Suppress the rendered table on stdout")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		URL:          pageURL,
		OutPath:      outPath,
		Schema:       schema,
		UserAgent:    userAgent,
		Timeout:      timeout,
		MaxAttempts:  maxAttempts,
		CacheDir:     cacheDir,
		CacheMaxAge:  cacheMaxAge,
		CacheClear:   cacheClear,
		CacheBypass:  cacheBypass,
		SQLitePath:   sqlitePath,
		PDFPath:      pdfPath,
		SnapshotPath: snapshotPath,
		Quiet:        quiet,
		Verbose:      verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file failed")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyEnvToConfig(&cfg)

	// Clamp the rendered table to the terminal when stdout is one.
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			cfg.RenderWidth = w
		}
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: 2 when the page yielded no data (missing table or
		// zero surviving rows), 1 for everything else.
		if errors.Is(err, valuation.ErrNoTable) || errors.Is(err, valuation.ErrNoRows) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	return a.Run(context.Background())
}
