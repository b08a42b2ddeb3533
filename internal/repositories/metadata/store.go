package metadata

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
)

var errCorruptLegacySession = errors.New("corrupt legacy session")

// Storage keys. The booksy_ prefix matches what the popup has always used,
// so a state file written by an earlier build keeps working.
const (
	keyAccessToken     = "booksy_access_token"
	keySelectedProfile = "booksy_selected_profile"

	// Legacy session record from pre-token builds.
	keyAuthenticated  = "booksy_authenticated"
	keyUserEmail      = "booksy_user_email"
	keyLoginMethod    = "booksy_login_method"
	keyLoginTimestamp = "booksy_login_timestamp"
)

// legacySessionTTL is the client-side freshness window for the legacy
// session record.
const legacySessionTTL = 30 * 24 * time.Hour

// Store exposes the typed slots the popup keeps in local state. It is the
// single owner of the key names.
type Store struct {
	repo Repository
}

func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// Token returns the stored bearer token, or "" when absent.
func (s *Store) Token(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, keyAccessToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *Store) SetToken(ctx context.Context, token string) error {
	return s.repo.Set(ctx, keyAccessToken, []byte(token))
}

func (s *Store) ClearToken(ctx context.Context) error {
	return s.repo.Delete(ctx, keyAccessToken)
}

// SelectedProfile returns the persisted selected-profile id, or "" when no
// selection has been made.
func (s *Store) SelectedProfile(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, keySelectedProfile)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *Store) SetSelectedProfile(ctx context.Context, id string) error {
	return s.repo.Set(ctx, keySelectedProfile, []byte(id))
}

func (s *Store) ClearSelectedProfile(ctx context.Context) error {
	return s.repo.Delete(ctx, keySelectedProfile)
}

// LegacySession is the session record persisted by pre-token popup builds.
type LegacySession struct {
	Email     string
	Method    string
	Timestamp time.Time
}

// SaveLegacySession persists a legacy session record.
func (s *Store) SaveLegacySession(ctx context.Context, ls LegacySession) error {
	pairs := map[string][]byte{
		keyAuthenticated:  []byte("true"),
		keyUserEmail:      []byte(ls.Email),
		keyLoginMethod:    []byte(ls.Method),
		keyLoginTimestamp: []byte(strconv.FormatInt(ls.Timestamp.UnixMilli(), 10)),
	}
	return s.repo.Update(ctx, func(r Repository) error {
		for k, v := range pairs {
			if err := r.Set(ctx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// LegacySession returns the stored legacy record, or nil when none exists.
func (s *Store) LegacySession(ctx context.Context) (*LegacySession, error) {
	auth, err := s.repo.Get(ctx, keyAuthenticated)
	if err != nil {
		return nil, err
	}
	if string(auth) != "true" {
		return nil, nil
	}

	email, err := s.repo.Get(ctx, keyUserEmail)
	if err != nil {
		return nil, err
	}
	method, err := s.repo.Get(ctx, keyLoginMethod)
	if err != nil {
		return nil, err
	}
	rawTS, err := s.repo.Get(ctx, keyLoginTimestamp)
	if err != nil {
		return nil, err
	}

	ms, err := strconv.ParseInt(string(rawTS), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad login timestamp %q", errCorruptLegacySession, rawTS)
	}

	return &LegacySession{
		Email:     string(email),
		Method:    string(method),
		Timestamp: time.UnixMilli(ms),
	}, nil
}

// PruneStaleLegacySession removes the legacy session record when it is
// older than the freshness window. Runs once at popup start. Returns true
// when a stale record was removed.
func (s *Store) PruneStaleLegacySession(ctx context.Context, now time.Time) (bool, error) {
	ls, err := s.LegacySession(ctx)
	if err != nil {
		// A corrupt record is treated as stale; real storage errors bubble up.
		if errors.Is(err, errCorruptLegacySession) {
			return true, s.deleteLegacySession(ctx)
		}
		return false, err
	}
	if ls == nil {
		return false, nil
	}
	if now.Sub(ls.Timestamp) <= legacySessionTTL {
		return false, nil
	}
	return true, s.deleteLegacySession(ctx)
}

func (s *Store) deleteLegacySession(ctx context.Context) error {
	return s.repo.Update(ctx, func(r Repository) error {
		for _, k := range []string{keyAuthenticated, keyUserEmail, keyLoginMethod, keyLoginTimestamp} {
			if err := r.Delete(ctx, k); err != nil {
				return err
			}
		}
		return nil
	})
}
