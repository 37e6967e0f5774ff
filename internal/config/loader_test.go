package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Service.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Service.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %q", cfg.Logging.Level)
	}
	if cfg.Engine.MinTokenLength != 3 {
		t.Errorf("expected default min token length 3, got %d", cfg.Engine.MinTokenLength)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
service:
  name: relevance-test
  port: 9090
logging:
  level: debug
engine:
  min_token_length: 2
  reasoning_seed: 42
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Service.Name != "relevance-test" || cfg.Service.Port != 9090 {
		t.Errorf("unexpected service config: %+v", cfg.Service)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %q", cfg.Logging.Level)
	}
	if cfg.Engine.ReasoningSeed != 42 {
		t.Errorf("expected reasoning seed 42, got %d", cfg.Engine.ReasoningSeed)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVICE_PORT", "7070")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("ENGINE_REASONING_SEED", "7")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Service.Port != 7070 {
		t.Errorf("expected env port 7070, got %d", cfg.Service.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected env level warn, got %q", cfg.Logging.Level)
	}
	if cfg.Engine.ReasoningSeed != 7 {
		t.Errorf("expected env seed 7, got %d", cfg.Engine.ReasoningSeed)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SERVICE_PORT", "not-a-number")
	if _, err := Load(""); err == nil {
		t.Error("expected error for non-integer port")
	}
}

func TestLoadRejectsBadDriver(t *testing.T) {
	t.Setenv("SERVICE_PORT", "")
	t.Setenv("DB_DSN", "catalog.db")
	t.Setenv("DB_DRIVER", "oracle")
	if _, err := Load(""); err == nil {
		t.Error("expected error for unsupported driver")
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("expected defaults for missing file, got error: %v", err)
	}
	if cfg.Service.Name != "relevance" {
		t.Errorf("expected default name, got %q", cfg.Service.Name)
	}
}
