package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig mirrors Config with env tags. No envDefault tags: a variable
// that is not set leaves the field (and thus the earlier layers) untouched.
type envConfig struct {
	APIBaseURL      string        `env:"API_BASE_URL"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT"`
	FaviconEndpoint string        `env:"FAVICON_ENDPOINT"`
	StateFile       string        `env:"STATE_FILE"`
	BookmarksFile   string        `env:"BOOKMARKS_FILE"`
	LogLevel        string        `env:"LOG_LEVEL"`
	PrettyLog       bool          `env:"PRETTY_LOG"`
}

// parseEnv overlays cfg with BOOKSY_-prefixed environment variables. A
// .env file in the working directory is loaded first when present, which
// keeps local development setups out of the shell profile.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	ec := envConfig{
		APIBaseURL:      cfg.APIBaseURL,
		RequestTimeout:  cfg.RequestTimeout,
		FaviconEndpoint: cfg.FaviconEndpoint,
		StateFile:       cfg.StateFile,
		BookmarksFile:   cfg.BookmarksFile,
		LogLevel:        cfg.LogLevel,
		PrettyLog:       cfg.PrettyLog,
	}

	if err := env.ParseWithOptions(&ec, env.Options{Prefix: "BOOKSY_"}); err != nil {
		panic(err)
	}

	cfg.APIBaseURL = ec.APIBaseURL
	cfg.RequestTimeout = ec.RequestTimeout
	cfg.FaviconEndpoint = ec.FaviconEndpoint
	cfg.StateFile = ec.StateFile
	cfg.BookmarksFile = ec.BookmarksFile
	cfg.LogLevel = ec.LogLevel
	cfg.PrettyLog = ec.PrettyLog
}
