// ABOUTME: Centralized configuration for the number facts CLI
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/harper/numfacts/internal/facts"
)

// Config holds all configuration for numfacts
type Config struct {
	// Numbers API settings
	APIURL      string
	DefaultType facts.FactType
	HTTPTimeout time.Duration

	// UI settings
	LogFile string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		APIURL:      getEnv("NUMBERS_API_URL", facts.DefaultBaseURL),
		DefaultType: facts.FactType(getEnv("NUMBERS_FACT_TYPE", string(facts.TypeTrivia))),
		HTTPTimeout: getEnvDuration("NUMBERS_HTTP_TIMEOUT", 0),
		LogFile:     os.Getenv("NUMFACTS_LOG_FILE"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("NUMBERS_API_URL must be an absolute http(s) URL, got %q", c.APIURL)
	}
	if !c.DefaultType.Valid() {
		return fmt.Errorf("NUMBERS_FACT_TYPE must be trivia, math or date, got %q", c.DefaultType)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("NUMBERS_HTTP_TIMEOUT must not be negative, got %v", c.HTTPTimeout)
	}
	return nil
}

// RequesterConfig converts c into a facts client configuration
func (c *Config) RequesterConfig() *facts.ClientConfig {
	rc := facts.DefaultConfig()
	if c.APIURL != "" {
		rc.BaseURL = c.APIURL
	}
	rc.Timeout = c.HTTPTimeout
	return rc
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
