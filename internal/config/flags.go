package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/booksy/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the Booksy backend
//	-t int      request timeout in seconds
//	-s string   path of the local state database
//	-b string   Chromium bookmarks file to read instead of auto-detection
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-s", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the Booksy backend")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.StateFile, "s", cfg.StateFile, "path of the local state database")
	fs.StringVar(&cfg.BookmarksFile, "b", cfg.BookmarksFile, "bookmarks file to read instead of auto-detection")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
