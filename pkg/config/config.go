// Package config loads textstats configuration from an optional YAML file,
// a .env file and TEXTSTATS_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/japaniel/textstats/pkg/textstats"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the input file used when none is configured.
const DefaultPath = "passage.txt"

// Config is the top-level configuration.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// InputConfig describes the passage to read.
type InputConfig struct {
	Path     string `yaml:"path"`
	Encoding string `yaml:"encoding"`
	HTML     bool   `yaml:"html"`
}

// AnalysisConfig controls the ranking step.
type AnalysisConfig struct {
	TopN int `yaml:"topN"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a YAML config file (if provided), loads .env from the working
// directory when present, and applies environment-variable overrides.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	_ = godotenv.Load()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// Validate checks the values that the pipeline cannot work around.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input.Path) == "" {
		return fmt.Errorf("input path must be non-empty")
	}
	if err := textstats.ValidateEncoding(c.Input.Encoding); err != nil {
		return fmt.Errorf("input.encoding: %w", err)
	}
	if c.Analysis.TopN < 1 {
		return fmt.Errorf("analysis.topN must be at least 1, got %d", c.Analysis.TopN)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Path:     DefaultPath,
			Encoding: "utf-8",
		},
		Analysis: AnalysisConfig{
			TopN: 10,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// applyEnvOverrides reads TEXTSTATS_* environment variables and overrides
// the corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	cfg.Input.Path = getEnv("TEXTSTATS_INPUT_PATH", cfg.Input.Path)
	cfg.Input.Encoding = getEnv("TEXTSTATS_INPUT_ENCODING", cfg.Input.Encoding)
	cfg.Input.HTML = getEnvBool("TEXTSTATS_INPUT_HTML", cfg.Input.HTML)
	cfg.Analysis.TopN = getEnvInt("TEXTSTATS_TOP_N", cfg.Analysis.TopN)
	cfg.Logging.Level = getEnv("TEXTSTATS_LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv("TEXTSTATS_LOG_FORMAT", cfg.Logging.Format)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
