package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Probe.MinInterval() != 2*time.Second {
		t.Fatalf("expected 2s default probe interval, got %v", cfg.Probe.MinInterval())
	}
	if cfg.Probe.CacheTTL() != 0 {
		t.Fatalf("expected cache entries to never expire by default, got %v", cfg.Probe.CacheTTL())
	}
	if cfg.Probe.Timeout() != 10*time.Second {
		t.Fatalf("expected 10s homepage timeout, got %v", cfg.Probe.Timeout())
	}
	if cfg.Probe.PageTimeout() != 5*time.Second {
		t.Fatalf("expected 5s page timeout, got %v", cfg.Probe.PageTimeout())
	}
	if cfg.Inference.Timeout() != 15*time.Second {
		t.Fatalf("expected 15s inference timeout, got %v", cfg.Inference.Timeout())
	}
	if cfg.Analysis.SafeMode {
		t.Fatalf("safe mode must default off")
	}
	if cfg.Probe.ResolvedUserAgent() == "" {
		t.Fatalf("expected a browser-like default user agent")
	}
}

func TestLoadMergesFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logging:
  level: debug
probe:
  minIntervalMillis: 500
inference:
  endpoint: http://models.internal:8000
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(configPathEnv, path)
	t.Setenv(safeModeEnv, "true")
	t.Setenv(inferenceAPIKeyEnv, "test-key")

	cfg := Load()

	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected file logging level, got %s", cfg.Logging.Level)
	}
	if cfg.Probe.MinInterval() != 500*time.Millisecond {
		t.Fatalf("expected file probe interval, got %v", cfg.Probe.MinInterval())
	}
	if cfg.Inference.Endpoint != "http://models.internal:8000" {
		t.Fatalf("expected file endpoint, got %s", cfg.Inference.Endpoint)
	}
	if cfg.Inference.APIKey != "test-key" {
		t.Fatalf("expected env api key, got %s", cfg.Inference.APIKey)
	}
	if !cfg.Analysis.SafeMode {
		t.Fatalf("expected SAFE_MODE env to force safe mode")
	}
}

func TestLoadIgnoresBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("probe: ["), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(configPathEnv, path)
	t.Setenv(safeModeEnv, "")
	t.Setenv(inferenceEndpointEnv, "")
	t.Setenv(inferenceAPIKeyEnv, "")

	cfg := Load()
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected defaults after parse failure, got %s", cfg.Logging.Level)
	}
}
