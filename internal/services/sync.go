package services

import (
	"context"

	"github.com/dmitrijs2005/booksy/internal/bookmarks"
	"github.com/dmitrijs2005/booksy/internal/logging"
)

// DefaultProfileID marks the built-in local profile. It has no backend
// counterpart, so sync requests for it are dropped without error.
const DefaultProfileID = "default"

// SyncAPI is the slice of the backend client the dispatcher needs.
type SyncAPI interface {
	SyncBookmarks(ctx context.Context, profileID string, nodes []bookmarks.Node) error
}

// Sync pushes the browser bookmark tree to the backend. Failures never
// surface to the popup: sync is best-effort and loses to whatever the user
// is doing.
type Sync struct {
	api      SyncAPI
	log      logging.Logger
	inFlight bool
}

func NewSync(api SyncAPI, log logging.Logger) *Sync {
	if log == nil {
		log = logging.Nop()
	}
	return &Sync{api: api, log: log}
}

// Dispatch sends the tree's top-level children for the given profile.
// It is a silent no-op when no real profile is selected, when the tree is
// missing, or when a previous dispatch is still running.
func (s *Sync) Dispatch(ctx context.Context, profileID string, tree *bookmarks.Node) {
	if profileID == "" || profileID == DefaultProfileID {
		return
	}
	if tree == nil {
		return
	}
	if s.inFlight {
		s.log.Debug(ctx, "sync already in flight, skipping", "profile", profileID)
		return
	}

	s.inFlight = true
	defer func() { s.inFlight = false }()

	if err := s.api.SyncBookmarks(ctx, profileID, tree.Children); err != nil {
		s.log.Error(ctx, "bookmark sync failed", "profile", profileID, "error", err)
		return
	}
	s.log.Info(ctx, "bookmarks synced", "profile", profileID, "nodes", len(tree.Children))
}

// InFlight reports whether a dispatch is currently running.
func (s *Sync) InFlight() bool { return s.inFlight }
