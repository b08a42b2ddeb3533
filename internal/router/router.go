// Package router decides which screen the popup shows. The decision is a
// pure function of the observable session state, re-derived on every loop
// iteration; nothing in here performs I/O.
package router

// Screen is the popup screen to render.
type Screen int

const (
	// ScreenLoading shows a spinner while the session is being resolved.
	ScreenLoading Screen = iota
	// ScreenAuth shows the combined login/register screen.
	ScreenAuth
	// ScreenCreateProfile shows the profile creation form.
	ScreenCreateProfile
	// ScreenProfileSelection shows the profile picker.
	ScreenProfileSelection
	// ScreenMain shows the sidebar plus the bookmark tree.
	ScreenMain
)

func (s Screen) String() string {
	switch s {
	case ScreenLoading:
		return "loading"
	case ScreenAuth:
		return "auth"
	case ScreenCreateProfile:
		return "create-profile"
	case ScreenProfileSelection:
		return "profile-selection"
	case ScreenMain:
		return "main"
	default:
		return "unknown"
	}
}

// FetchState tracks the one-per-session current-user fetch.
type FetchState int

const (
	// FetchIdle: a token exists but the fetch has not started yet.
	FetchIdle FetchState = iota
	// FetchPending: the fetch is in flight.
	FetchPending
	// FetchSucceeded: the backend confirmed the user.
	FetchSucceeded
	// FetchFailed: the fetch failed; the token alone proves nothing.
	FetchFailed
)

// State is everything the router looks at. It is assembled fresh from the
// session controller, the profile directory, and the navigation flags.
type State struct {
	TokenPresent bool
	UserFetch    FetchState

	ProfilesLoaded    bool
	ProfileIDs        []string
	SelectedProfileID string

	// WantCreateProfile is set while the user is in the create-profile
	// flow and cleared on completion or cancel.
	WantCreateProfile bool
	// WantProfileList is set when the user explicitly navigated back to
	// the picker.
	WantProfileList bool
}

// IsAuthenticated: a token alone is never sufficient; the user-identity
// fetch is the authority.
func (s State) IsAuthenticated() bool {
	return s.TokenPresent && s.UserFetch == FetchSucceeded
}

// IsLoading: a token exists and the user fetch has not resolved.
func (s State) IsLoading() bool {
	return s.TokenPresent && (s.UserFetch == FetchIdle || s.UserFetch == FetchPending)
}

// Resolve maps the state to a screen. Rules are evaluated in order; first
// match wins.
func (s State) Resolve() Screen {
	if s.IsLoading() {
		return ScreenLoading
	}
	if !s.IsAuthenticated() {
		return ScreenAuth
	}
	if s.WantCreateProfile {
		return ScreenCreateProfile
	}
	if !s.ProfilesLoaded || s.WantProfileList || !s.hasValidSelection() {
		return ScreenProfileSelection
	}
	return ScreenMain
}

// hasValidSelection reports whether the persisted selected-profile id still
// resolves against the freshly fetched list. A remembered id that no longer
// matches (deleted elsewhere) counts as no selection.
func (s State) hasValidSelection() bool {
	if s.SelectedProfileID == "" {
		return false
	}
	for _, id := range s.ProfileIDs {
		if id == s.SelectedProfileID {
			return true
		}
	}
	return false
}
