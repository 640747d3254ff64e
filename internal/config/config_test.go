package config

import (
	"os"
	"path/filepath"
	"testing"

	"reelplan/internal/plan"
	"reelplan/internal/script"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("REELPLAN_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("format = %q, want json", cfg.Logging.Format)
	}
	if cfg.Limits.BatchConcurrency != 4 {
		t.Errorf("batch concurrency = %d", cfg.Limits.BatchConcurrency)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
server:
  port: 9090
logging:
  level: debug
  format: text
limits:
  rate_limit:
    requests_per_second: 5
    burst_size: 10
  batch_concurrency: 2
  max_batch_size: 10
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("REELPLAN_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "text" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if cfg.Limits.RateLimit.RequestsPerSecond != 5 {
		t.Errorf("rps = %d", cfg.Limits.RateLimit.RequestsPerSecond)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("REELPLAN_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("REELPLAN_PORT", "7070")
	t.Setenv("REELPLAN_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want env override", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("level = %q, want env override", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
server:
  port: 99999
limits:
  rate_limit:
    requests_per_second: 5
    burst_size: 10
  batch_concurrency: 2
  max_batch_size: 10
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("REELPLAN_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for out-of-range port")
	}
}

func TestToolCatalogOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	body := `
recommendations:
  wide:
    balanced:
      tool: test_tool
      score: 8.0
      cost_per_second: 0.10
      reason: test entry
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	cfg.Paths.ToolCatalog = path

	catalog, err := cfg.ToolCatalog()
	if err != nil {
		t.Fatalf("tool catalog: %v", err)
	}
	choice := catalog.Lookup(script.ShotWide, plan.TierBalanced)
	if choice.Tool != "test_tool" {
		t.Errorf("tool = %q, want override", choice.Tool)
	}
	if catalog.VFX.Tool == "" {
		t.Error("VFX defaults not applied")
	}

	cfg.Paths.ToolCatalog = ""
	if _, err := cfg.ToolCatalog(); err != nil {
		t.Errorf("built-in catalog: %v", err)
	}
}
