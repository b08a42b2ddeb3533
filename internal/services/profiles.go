package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/booksy/internal/client"
	"github.com/dmitrijs2005/booksy/internal/logging"
	"github.com/dmitrijs2005/booksy/internal/models"
	"github.com/dmitrijs2005/booksy/internal/repositories/metadata"
)

// ErrNameRequired is returned by Create when the profile name is empty
// after trimming.
var ErrNameRequired = errors.New("profile name is required")

// ProfileAPI is the slice of the backend client the directory needs. The
// bookmark-set methods are the alternate-route mirror older backends
// expose instead of /profile.
type ProfileAPI interface {
	Profiles(ctx context.Context) ([]models.Profile, error)
	CreateProfile(ctx context.Context, req models.CreateProfileRequest) (*models.Profile, error)
	BookmarkSets(ctx context.Context) ([]models.BookmarkSet, error)
	CreateBookmarkSet(ctx context.Context, req models.CreateProfileRequest) (*models.BookmarkSet, error)
}

// Profiles is the directory of the session's profiles. The fetched list is
// cached for the popup lifetime; Create appends locally instead of
// refetching.
type Profiles struct {
	api    ProfileAPI
	tokens client.TokenStore
	store  *metadata.Store
	log    logging.Logger

	cache    []models.Profile
	loaded   bool
	creating bool
}

func NewProfiles(api ProfileAPI, tokens client.TokenStore, store *metadata.Store, log logging.Logger) *Profiles {
	if log == nil {
		log = logging.Nop()
	}
	return &Profiles{api: api, tokens: tokens, store: store, log: log}
}

// List returns the session's profiles. Without a token the directory is
// disabled: empty result, no network call. The first successful fetch is
// cached; a failed fetch leaves the caller with an empty list and the
// backend error for the banner.
func (p *Profiles) List(ctx context.Context) ([]models.Profile, error) {
	if p.loaded {
		return p.cache, nil
	}

	token, err := p.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	if token == "" {
		return nil, nil
	}

	profiles, err := p.api.Profiles(ctx)
	if isRouteMissing(err) {
		// Older backends only expose the /bookmark-set mirror.
		profiles, err = p.api.BookmarkSets(ctx)
	}
	if err != nil {
		p.loaded = true
		p.cache = nil
		return nil, err
	}
	p.loaded = true
	p.cache = profiles
	return p.cache, nil
}

// isRouteMissing reports whether the backend answered 404 for the route
// itself, the signature of a backend predating the /profile endpoints.
func isRouteMissing(err error) bool {
	var apiErr *client.APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Create submits a new profile and appends it to the cached list,
// preserving the existing order. The name is trimmed and required; a blank
// description is omitted from the request, not sent as "".
func (p *Profiles) Create(ctx context.Context, name, description string) (*models.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	p.creating = true
	defer func() { p.creating = false }()

	req := models.CreateProfileRequest{Name: name, Description: strings.TrimSpace(description)}
	profile, err := p.api.CreateProfile(ctx, req)
	if isRouteMissing(err) {
		profile, err = p.api.CreateBookmarkSet(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	p.cache = append(p.cache, *profile)
	p.loaded = true
	return profile, nil
}

// Select persists the chosen profile id so reopening the popup restores
// the main screen directly.
func (p *Profiles) Select(ctx context.Context, id string) error {
	return p.store.SetSelectedProfile(ctx, id)
}

// Selected returns the persisted selected-profile id, "" when none.
func (p *Profiles) Selected(ctx context.Context) (string, error) {
	return p.store.SelectedProfile(ctx)
}

// Invalidate drops the cached list and the persisted selection. Wired as
// the session's logout hook.
func (p *Profiles) Invalidate(ctx context.Context) {
	p.cache = nil
	p.loaded = false
	if err := p.store.ClearSelectedProfile(ctx); err != nil {
		p.log.Error(ctx, "clearing selected profile", "error", err)
	}
}

// Loaded reports whether a list fetch has completed this session.
func (p *Profiles) Loaded() bool { return p.loaded }

// Cached returns the current cached list without touching the network.
func (p *Profiles) Cached() []models.Profile { return p.cache }

// IDs returns the ids of the cached profiles, for the router.
func (p *Profiles) IDs() []string {
	ids := make([]string, 0, len(p.cache))
	for _, pr := range p.cache {
		ids = append(ids, pr.ID)
	}
	return ids
}

func (p *Profiles) IsCreating() bool { return p.creating }
