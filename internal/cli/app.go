package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/booksy/internal/bookmarks"
	"github.com/dmitrijs2005/booksy/internal/browsers"
	"github.com/dmitrijs2005/booksy/internal/client"
	"github.com/dmitrijs2005/booksy/internal/config"
	"github.com/dmitrijs2005/booksy/internal/filex"
	"github.com/dmitrijs2005/booksy/internal/logging"
	"github.com/dmitrijs2005/booksy/internal/models"
	"github.com/dmitrijs2005/booksy/internal/repositories"
	"github.com/dmitrijs2005/booksy/internal/repositories/metadata"
	"github.com/dmitrijs2005/booksy/internal/services"

	_ "modernc.org/sqlite"
)

// App wires the popup together: config, local state, backend client, and
// the services the screens talk to.
type App struct {
	config *config.Config
	log    logging.Logger

	repos    *repositories.Repositories
	store    *metadata.Store
	api      *client.Client
	session  *services.Session
	profiles *services.Profiles
	syncer   *services.Sync

	reader *bufio.Reader
	out    io.Writer

	// navigation flags feeding the router
	wantCreateProfile bool
	wantProfileList   bool

	// expanded holds the ids of the folders currently open on the main
	// screen; it survives screen switches within one run.
	expanded map[string]bool

	// entries is the last rendered bookmark listing, kept so numeric
	// commands can be resolved against what the user saw.
	entries []bookmarks.Entry

	// connected holds the in-memory browser entries from the add-browser
	// flow; never persisted.
	connected []*models.Browser
}

func NewApp(cfg *config.Config) (*App, error) {
	log, err := logging.NewZapLogger(cfg.LogLevel, cfg.PrettyLog)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	ctx := context.Background()

	if _, err := filex.EnsureParentDir(cfg.StateFile); err != nil {
		log.Error(ctx, "preparing state directory", "error", err)
		return nil, err
	}

	repos, err := repositories.InitDatabase(ctx, cfg.StateFile)
	if err != nil {
		log.Error(ctx, "initializing state database", "error", err)
		return nil, err
	}

	store := metadata.NewStore(repos.Metadata)

	pruned, err := store.PruneStaleLegacySession(ctx, time.Now())
	if err != nil {
		log.Warn(ctx, "pruning legacy session", "error", err)
	} else if pruned {
		log.Info(ctx, "stale legacy session removed")
	}

	api := client.New(cfg.APIBaseURL, cfg.RequestTimeout, store, log)

	session := services.NewSession(api, store, log)
	profiles := services.NewProfiles(api, store, store, log)
	session.OnLogout(profiles.Invalidate)

	return &App{
		config:   cfg,
		log:      log,
		repos:    repos,
		store:    store,
		api:      api,
		session:  session,
		profiles: profiles,
		syncer:   services.NewSync(api, log),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		expanded: make(map[string]bool),
	}, nil
}

// Close releases the state database.
func (a *App) Close() error {
	return a.repos.Close()
}

// bookmarkSource resolves where the bookmark tree is read from: the
// configured override file when set, otherwise the first detected browser
// profile. Returns nil when no source exists; the main screen renders the
// empty placeholder then.
func (a *App) bookmarkSource(ctx context.Context) bookmarks.Source {
	if a.config.BookmarksFile != "" {
		return bookmarks.NewFileSource(a.config.BookmarksFile)
	}

	d, err := browsers.NewDetector("")
	if err != nil {
		a.log.Warn(ctx, "browser detection unavailable", "error", err)
		return nil
	}
	found, err := d.Detect(ctx)
	if err != nil {
		a.log.Warn(ctx, "browser detection failed", "error", err)
		return nil
	}
	if len(found) == 0 {
		return nil
	}
	return bookmarks.NewFileSource(found[0].BookmarksPath)
}
