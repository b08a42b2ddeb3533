// Package config holds runtime settings for the Booksy popup. Values are
// layered: built-in defaults, then an optional JSON file (-c/-config), then
// BOOKSY_-prefixed environment variables, then command-line flags. Later
// sources take precedence over earlier ones.
package config

import "time"

type Config struct {
	// APIBaseURL is the base URL of the Booksy backend.
	APIBaseURL string

	// RequestTimeout bounds every backend request.
	RequestTimeout time.Duration

	// FaviconEndpoint is the favicon service queried per bookmark host.
	FaviconEndpoint string

	// StateFile is the path of the local SQLite state database.
	StateFile string

	// BookmarksFile, when set, overrides browser detection and reads the
	// bookmark tree from this Chromium-format file.
	BookmarksFile string

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string

	// PrettyLog selects the colored development encoder.
	PrettyLog bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second
	c.FaviconEndpoint = "https://www.google.com/s2/favicons"
	c.StateFile = "booksy.db"
	c.LogLevel = "info"
	c.PrettyLog = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
