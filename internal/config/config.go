// Package config provides configuration for the qutrit tools.
package config

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds tool configuration.
type Config struct {
	// LogLevel is the minimum zap level ("debug", "info", "warn", "error").
	LogLevel string `yaml:"log_level"`
	// LogFormat selects the encoder: "json" or "console".
	LogFormat string `yaml:"log_format"`
	// Debug forces debug level and the development encoder.
	Debug bool `yaml:"debug"`
	// Concurrency bounds the batch evaluator's worker count.
	Concurrency int `yaml:"concurrency"`
	// Tolerance is the absolute norm tolerance for amplitude vectors.
	Tolerance float64 `yaml:"tolerance"`
	// Epsilon is the absolute tolerance for matrix comparisons.
	Epsilon float64 `yaml:"epsilon"`
	// Compression is the codec level: "fastest", "default", "better" or "best".
	Compression string `yaml:"compression"`
	// Timeout bounds a single circuit run.
	Timeout time.Duration `yaml:"timeout"`
}

// FromEnv creates a Config from environment variables.
func FromEnv() *Config {
	cfg := &Config{
		LogLevel:    getEnv("QUTRIT_LOG_LEVEL", "info"),
		LogFormat:   getEnv("QUTRIT_LOG_FORMAT", "console"),
		Debug:       getEnvBool("QUTRIT_DEBUG", false),
		Concurrency: getEnvInt("QUTRIT_CONCURRENCY", runtime.GOMAXPROCS(0)),
		Tolerance:   getEnvFloat("QUTRIT_TOLERANCE", 1e-10),
		Epsilon:     getEnvFloat("QUTRIT_EPSILON", 1e-9),
		Compression: getEnv("QUTRIT_COMPRESSION", "default"),
		Timeout:     getEnvDuration("QUTRIT_TIMEOUT", 30*time.Second),
	}
	return cfg
}

// Load reads the environment, then overlays the YAML file at path when path is
// non-empty. Keys absent from the file keep their environment value.
func Load(path string) (*Config, error) {
	cfg := FromEnv()
	if path == "" {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the tools cannot run with.
func (c *Config) Validate() error {
	if c.Concurrency < 1 {
		return fmt.Errorf("config: concurrency must be >= 1, got %d", c.Concurrency)
	}
	if err := checkTolerance("tolerance", c.Tolerance); err != nil {
		return err
	}
	if err := checkTolerance("epsilon", c.Epsilon); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

func checkTolerance(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("config: %s must be finite and non-negative, got %g", name, v)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
