package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
url: https://example.com/article
out: teams.csv
schema: reduced
fetch:
  timeout: 5s
  maxAttempts: 3
cache:
  dir: /tmp/cache
  maxAge: 24h
sinks:
  sqlite: runs.sqlite
quiet: true
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.URL != "https://example.com/article" || fc.Schema != "reduced" {
		t.Fatalf("unexpected config: %+v", fc)
	}
	if time.Duration(fc.Fetch.Timeout) != 5*time.Second || fc.Fetch.MaxAttempts != 3 {
		t.Fatalf("unexpected fetch config: %+v", fc.Fetch)
	}
	if time.Duration(fc.Cache.MaxAge) != 24*time.Hour {
		t.Fatalf("unexpected cache maxAge: %v", fc.Cache.MaxAge)
	}
	if !fc.Quiet {
		t.Fatal("expected quiet")
	}
}

func TestApplyFileConfig_FlagsWin(t *testing.T) {
	cfg := Config{
		URL:     "https://flags.example.com",
		OutPath: DefaultOutPath,
	}
	var fc FileConfig
	fc.URL = "https://file.example.com"
	fc.Out = "from-file.csv"
	fc.Sinks.PDF = "report.pdf"
	ApplyFileConfig(&cfg, fc)

	if cfg.URL != "https://flags.example.com" {
		t.Fatalf("explicit flag should win, got %q", cfg.URL)
	}
	if cfg.OutPath != "from-file.csv" {
		t.Fatalf("default should be overridden by file, got %q", cfg.OutPath)
	}
	if cfg.PDFPath != "report.pdf" {
		t.Fatalf("expected pdf path from file, got %q", cfg.PDFPath)
	}
}

func TestApplyEnvToConfig(t *testing.T) {
	t.Setenv("TEAMVALUES_URL", "https://env.example.com")
	t.Setenv("TEAMVALUES_SCHEMA", "reduced")
	t.Setenv("TEAMVALUES_TIMEOUT", "3s")

	cfg := Config{URL: DefaultURL}
	ApplyEnvToConfig(&cfg)
	if cfg.URL != "https://env.example.com" {
		t.Fatalf("expected env url, got %q", cfg.URL)
	}
	if cfg.Schema != "reduced" {
		t.Fatalf("expected env schema, got %q", cfg.Schema)
	}
	if cfg.Timeout != 3*time.Second {
		t.Fatalf("expected env timeout, got %v", cfg.Timeout)
	}
}

func TestValidateConfig(t *testing.T) {
	if err := ValidateConfig(Config{OutPath: "x.csv"}); err == nil {
		t.Fatal("expected error for missing url")
	}
	if err := ValidateConfig(Config{URL: "https://x", OutPath: "x.csv", Schema: "weird"}); err == nil {
		t.Fatal("expected error for bad schema")
	}
	if err := ValidateConfig(Config{URL: "https://x", OutPath: "x.csv", Schema: "full"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Snapshot-only runs need no output path.
	if err := ValidateConfig(Config{URL: "https://x", SnapshotPath: "snap.html"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
