package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv        = "VERACITY_SCANNER_CONFIG"
	safeModeEnv          = "SAFE_MODE"
	inferenceEndpointEnv = "INFERENCE_ENDPOINT"
	inferenceAPIKeyEnv   = "INFERENCE_API_KEY"

	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Analysis   AnalysisConfig   `yaml:"analysis"`
	Inference  InferenceConfig  `yaml:"inference"`
	Probe      ProbeConfig      `yaml:"probe"`
	Reputation ReputationConfig `yaml:"reputation"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// AnalysisConfig tunes the sentiment analyzer tiers.
type AnalysisConfig struct {
	// SafeMode skips every advanced-tier acquisition regardless of availability.
	SafeMode bool `yaml:"safeMode"`
}

// InferenceConfig describes the optional remote model service providing the
// advanced sentiment and emotion tiers. An empty endpoint disables both.
type InferenceConfig struct {
	Endpoint       string `yaml:"endpoint"`
	APIKey         string `yaml:"apiKey"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

// Timeout resolves the configured request timeout.
func (c InferenceConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ProbeConfig tunes the credibility scorer's outbound page probes.
type ProbeConfig struct {
	TimeoutSeconds     int    `yaml:"timeoutSeconds"`
	PageTimeoutSeconds int    `yaml:"pageTimeoutSeconds"`
	MinIntervalMillis  int    `yaml:"minIntervalMillis"`
	UserAgent          string `yaml:"userAgent"`
	// CacheTTLSeconds expires cached domain records; 0 keeps them forever.
	CacheTTLSeconds int `yaml:"cacheTtlSeconds"`
}

// Timeout resolves the homepage-analysis fetch timeout.
func (p ProbeConfig) Timeout() time.Duration {
	if p.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// PageTimeout resolves the scoring-path page fetch timeout.
func (p ProbeConfig) PageTimeout() time.Duration {
	if p.PageTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(p.PageTimeoutSeconds) * time.Second
}

// MinInterval resolves the spacing enforced between outbound probes.
func (p ProbeConfig) MinInterval() time.Duration {
	if p.MinIntervalMillis <= 0 {
		return 2 * time.Second
	}
	return time.Duration(p.MinIntervalMillis) * time.Millisecond
}

// CacheTTL resolves the domain-cache expiry; zero means entries never expire.
func (p ProbeConfig) CacheTTL() time.Duration {
	if p.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(p.CacheTTLSeconds) * time.Second
}

// ResolvedUserAgent returns the configured UA or the browser-like default.
func (p ProbeConfig) ResolvedUserAgent() string {
	if p.UserAgent == "" {
		return defaultUserAgent
	}
	return p.UserAgent
}

// ReputationConfig points to an optional YAML file whose entries shadow the
// built-in reputation table.
type ReputationConfig struct {
	OverridesPath string `yaml:"overridesPath"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(safeModeEnv); v != "" {
		c.Analysis.SafeMode = v == "true" || v == "1"
	}

	if v := os.Getenv(inferenceEndpointEnv); v != "" {
		c.Inference.Endpoint = v
	}

	if v := os.Getenv(inferenceAPIKeyEnv); v != "" {
		c.Inference.APIKey = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.Analysis.SafeMode {
		base.Analysis.SafeMode = true
	}

	if override.Inference.Endpoint != "" {
		base.Inference.Endpoint = override.Inference.Endpoint
	}
	if override.Inference.APIKey != "" {
		base.Inference.APIKey = override.Inference.APIKey
	}
	if override.Inference.TimeoutSeconds > 0 {
		base.Inference.TimeoutSeconds = override.Inference.TimeoutSeconds
	}

	if override.Probe.TimeoutSeconds > 0 {
		base.Probe.TimeoutSeconds = override.Probe.TimeoutSeconds
	}
	if override.Probe.PageTimeoutSeconds > 0 {
		base.Probe.PageTimeoutSeconds = override.Probe.PageTimeoutSeconds
	}
	if override.Probe.MinIntervalMillis > 0 {
		base.Probe.MinIntervalMillis = override.Probe.MinIntervalMillis
	}
	if override.Probe.UserAgent != "" {
		base.Probe.UserAgent = override.Probe.UserAgent
	}
	if override.Probe.CacheTTLSeconds > 0 {
		base.Probe.CacheTTLSeconds = override.Probe.CacheTTLSeconds
	}

	if override.Reputation.OverridesPath != "" {
		base.Reputation = override.Reputation
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Probe:   ProbeConfig{UserAgent: defaultUserAgent},
	}
}
