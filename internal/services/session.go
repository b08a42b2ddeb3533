// Package services contains the application services behind the popup
// screens: the auth session controller, the profile directory, and the
// bookmark sync dispatcher. The popup is single-threaded (one loop drives
// every screen), so the services keep plain fields instead of locks.
package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/booksy/internal/client"
	"github.com/dmitrijs2005/booksy/internal/logging"
	"github.com/dmitrijs2005/booksy/internal/models"
	"github.com/dmitrijs2005/booksy/internal/router"
	"github.com/dmitrijs2005/booksy/internal/validate"
)

// AuthAPI is the slice of the backend client the session controller needs.
type AuthAPI interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)
}

// ValidationError reports field-level form errors found before submission.
// No request is issued when validation fails.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("validation failed")
	for _, k := range keys {
		fmt.Fprintf(&b, "; %s: %s", k, e.Fields[k])
	}
	return b.String()
}

// Session derives the popup's authentication state. A stored token only
// means "possibly authenticated"; the current-user fetch is the authority,
// and it runs at most once per session.
type Session struct {
	api    AuthAPI
	tokens client.TokenStore
	log    logging.Logger

	user  *models.User
	fetch router.FetchState

	loggingIn   bool
	registering bool

	onLogout []func(ctx context.Context)
}

func NewSession(api AuthAPI, tokens client.TokenStore, log logging.Logger) *Session {
	if log == nil {
		log = logging.Nop()
	}
	return &Session{api: api, tokens: tokens, log: log}
}

// OnLogout registers a hook run on explicit logout. The 401 token side
// effect happens in the transport and needs no hook: the next TokenPresent
// read observes the missing token.
func (s *Session) OnLogout(fn func(ctx context.Context)) {
	s.onLogout = append(s.onLogout, fn)
}

// Login validates the form, submits credentials, and on success stores the
// returned token and caches the returned user. On failure prior state is
// untouched and the backend error is surfaced verbatim.
func (s *Session) Login(ctx context.Context, email, password string) (*models.User, error) {
	if errs := validate.LoginForm(email, password); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	s.loggingIn = true
	defer func() { s.loggingIn = false }()

	resp, err := s.api.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	if err := s.tokens.SetToken(ctx, resp.AccessToken); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	s.user = &resp.User
	s.fetch = router.FetchSucceeded
	return s.user, nil
}

// Register is Login with a different route; it additionally returns the
// backend's confirmation message. Backends that include an access token in
// the register response get the same token/user caching as login.
func (s *Session) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	if errs := validate.RegisterForm(username, email, password); len(errs) > 0 {
		return nil, "", &ValidationError{Fields: errs}
	}

	s.registering = true
	defer func() { s.registering = false }()

	resp, err := s.api.Register(ctx, models.RegisterRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return nil, "", err
	}

	if resp.AccessToken != "" {
		if err := s.tokens.SetToken(ctx, resp.AccessToken); err != nil {
			return nil, "", fmt.Errorf("store token: %w", err)
		}
		s.user = &resp.User
		s.fetch = router.FetchSucceeded
	}
	return &resp.User, resp.Message, nil
}

// CurrentUser resolves the session user. Without a token it reports absent
// immediately, no network call. With a token it performs exactly one fetch
// per session; the result (including failure) is cached until Logout or
// Refetch.
func (s *Session) CurrentUser(ctx context.Context) (*models.User, error) {
	switch s.fetch {
	case router.FetchSucceeded:
		return s.user, nil
	case router.FetchFailed:
		return nil, nil
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	if token == "" {
		return nil, nil
	}

	s.fetch = router.FetchPending
	user, err := s.api.Me(ctx)
	if err != nil {
		s.fetch = router.FetchFailed
		return nil, err
	}
	s.user = user
	s.fetch = router.FetchSucceeded
	return user, nil
}

// Logout clears the stored token and purges all cached session data. It
// never calls the backend.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.tokens.ClearToken(ctx); err != nil {
		return err
	}
	s.user = nil
	s.fetch = router.FetchIdle
	for _, fn := range s.onLogout {
		fn(ctx)
	}
	return nil
}

// Refetch forgets the cached fetch result so the next CurrentUser call hits
// the backend again.
func (s *Session) Refetch() {
	s.user = nil
	s.fetch = router.FetchIdle
}

// TokenPresent reports whether a token is currently stored. It re-reads the
// store on every call because the transport clears the token on 401 behind
// the session's back.
func (s *Session) TokenPresent(ctx context.Context) (bool, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

// FetchState exposes the user-fetch progress for the router.
func (s *Session) FetchState() router.FetchState { return s.fetch }

// User returns the cached user, if any.
func (s *Session) User() *models.User { return s.user }

func (s *Session) IsLoggingIn() bool { return s.loggingIn }

func (s *Session) IsRegistering() bool { return s.registering }
