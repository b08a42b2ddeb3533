package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/booksy/internal/flagx"
	"github.com/dmitrijs2005/booksy/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL      *string         `json:"api_base_url"`
	RequestTimeout  *timex.Duration `json:"request_timeout"`
	FaviconEndpoint *string         `json:"favicon_endpoint"`
	StateFile       *string         `json:"state_file"`
	BookmarksFile   *string         `json:"bookmarks_file"`
	LogLevel        *string         `json:"log_level"`
	PrettyLog       *bool           `json:"pretty_log"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. Absent file path means no JSON stage. Fields missing
// from the file keep their current values. Read or unmarshal errors panic;
// a broken config file should stop the popup before it does anything.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.FaviconEndpoint != nil {
		cfg.FaviconEndpoint = *jc.FaviconEndpoint
	}
	if jc.StateFile != nil {
		cfg.StateFile = *jc.StateFile
	}
	if jc.BookmarksFile != nil {
		cfg.BookmarksFile = *jc.BookmarksFile
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.PrettyLog != nil {
		cfg.PrettyLog = *jc.PrettyLog
	}
}
