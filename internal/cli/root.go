package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/booksy/internal/router"
	"github.com/dmitrijs2005/booksy/internal/services"
)

// buildState assembles the router input from the live services and the
// navigation flags. It is re-run before every screen dispatch so token
// changes made behind the session's back (the transport's 401 handling)
// are picked up immediately.
func (a *App) buildState(ctx context.Context) (router.State, error) {
	tokenPresent, err := a.session.TokenPresent(ctx)
	if err != nil {
		return router.State{}, fmt.Errorf("read session state: %w", err)
	}

	selected, err := a.profiles.Selected(ctx)
	if err != nil {
		return router.State{}, fmt.Errorf("read selected profile: %w", err)
	}

	ids := a.profiles.IDs()
	if a.profiles.Loaded() {
		// The built-in local profile is always selectable.
		ids = append(ids, services.DefaultProfileID)
	}

	return router.State{
		TokenPresent:      tokenPresent,
		UserFetch:         a.session.FetchState(),
		ProfilesLoaded:    a.profiles.Loaded(),
		ProfileIDs:        ids,
		SelectedProfileID: selected,
		WantCreateProfile: a.wantCreateProfile,
		WantProfileList:   a.wantProfileList,
	}, nil
}

// resolveSession runs the pending current-user fetch that the loading
// screen stands for. A failed fetch leaves the session unauthenticated and
// the loop lands on the auth screen next iteration.
func (a *App) resolveSession(ctx context.Context) {
	if _, err := a.session.CurrentUser(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not verify session:", err)
	}
}

// Run drives the popup loop: derive the screen from the current state,
// hand one command to that screen's handler, repeat. It blocks until the
// user exits or reading the local state fails.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	fmt.Fprintln(a.out, "Booksy (type 'help' for commands)")

	for {
		state, err := a.buildState(ctx)
		if err != nil {
			a.log.Error(ctx, "resolving screen state", "error", err)
			return err
		}

		var quit bool
		switch state.Resolve() {
		case router.ScreenLoading:
			a.resolveSession(ctx)
		case router.ScreenAuth:
			quit = a.authScreen(ctx)
		case router.ScreenCreateProfile:
			quit = a.createProfileScreen(ctx)
		case router.ScreenProfileSelection:
			quit = a.profileSelectionScreen(ctx, state)
		case router.ScreenMain:
			quit = a.mainScreen(ctx, state)
		}
		if quit {
			fmt.Fprintln(a.out, "Bye!")
			return nil
		}
	}
}

// prompt prints the screen prompt with the signed-in user, if known.
func (a *App) prompt(screen string) {
	status := ""
	if u := a.session.User(); u != nil {
		status = fmt.Sprintf(" (%s)", u.Email)
	}
	fmt.Fprintf(a.out, "booksy:%s%s> ", screen, status)
}

// readCommand reads one whitespace-trimmed input line for a screen.
func (a *App) readCommand(screen string) (string, bool) {
	a.prompt(screen)
	line, err := a.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}
