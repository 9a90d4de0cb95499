// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	App    AppConfig
	Logger LoggerConfig
	Server ServerConfig
	Store  StoreConfig
	Build  BuildConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string        // Server port (default: 8080)
	ReadTimeout  time.Duration // HTTP read timeout (default: 15s)
	WriteTimeout time.Duration // HTTP write timeout (default: 15s)
	IdleTimeout  time.Duration // HTTP idle timeout (default: 60s)
	// RateLimitRPS caps resolve requests per second per client IP.
	RateLimitRPS float64
	// RateLimitBurst is the per-IP burst allowance.
	RateLimitBurst int
}

// StoreConfig holds registry store configuration.
type StoreConfig struct {
	// Path is the Badger database directory holding the registry artifact.
	Path string
}

// BuildConfig holds offline build configuration (cmd/seed).
type BuildConfig struct {
	// PrimaryPath is the classification source table.
	PrimaryPath string
	// SecondaryPath is the impact-metrics source table.
	SecondaryPath string
	// ArtifactPath, when set, additionally exports the registry as one
	// flat JSON document.
	ArtifactPath string
	// ExcludedCategories overrides the built-in excluded subject areas.
	// Empty means use the defaults.
	ExcludedCategories []string
}

// Options are the pre-parsed flag values feeding Load. Flag definition
// stays in main so each binary surfaces only the flags it cares about.
type Options struct {
	Environment   string
	LogLevel      string
	Port          string
	StorePath     string
	PrimaryPath   string
	SecondaryPath string
	ArtifactPath  string
	Excluded      string // comma-separated
	EnvFile       string
}

// Load builds configuration with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(opts.Environment, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(opts.LogLevel, "LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Port:           getConfigValue(opts.Port, "PORT", "8080"),
			ReadTimeout:    getDurationValue("READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDurationValue("WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:    getDurationValue("IDLE_TIMEOUT", 60*time.Second),
			RateLimitRPS:   10,
			RateLimitBurst: 30,
		},
		Store: StoreConfig{
			Path: getConfigValue(opts.StorePath, "STORE_PATH", "data/registry"),
		},
		Build: BuildConfig{
			PrimaryPath:        getConfigValue(opts.PrimaryPath, "PRIMARY_PATH", "data/classification.csv"),
			SecondaryPath:      getConfigValue(opts.SecondaryPath, "SECONDARY_PATH", "data/metrics.csv"),
			ArtifactPath:       getConfigValue(opts.ArtifactPath, "ARTIFACT_PATH", ""),
			ExcludedCategories: splitList(getConfigValue(opts.Excluded, "EXCLUDED_CATEGORIES", "")),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks configuration consistency.
func (c *Config) validate() error {
	if c.Store.Path == "" {
		return fmt.Errorf("store path must not be empty")
	}
	if c.Server.RateLimitRPS <= 0 || c.Server.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit values must be positive")
	}
	return nil
}

// getConfigValue returns the first non-empty value among flag, env, default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getDurationValue reads a duration from the environment, falling back on
// the default when absent or unparseable.
func getDurationValue(envKey string, defaultValue time.Duration) time.Duration {
	if envValue := os.Getenv(envKey); envValue != "" {
		if d, err := time.ParseDuration(envValue); err == nil {
			return d
		}
	}
	return defaultValue
}

// splitList parses a comma-separated list, trimming blanks.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for part := range strings.SplitSeq(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// loadEnvFile loads KEY=VALUE pairs from a file into the environment,
// without overriding variables that are already set.
func loadEnvFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"`)
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}

	return scanner.Err()
}
