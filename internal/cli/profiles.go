package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/booksy/internal/router"
	"github.com/dmitrijs2005/booksy/internal/services"
)

// profileSelectionScreen lists the session's profiles and handles one
// command. The list is fetched on first entry; a failed fetch leaves only
// the built-in local profile selectable.
func (a *App) profileSelectionScreen(ctx context.Context, state router.State) bool {
	if !a.profiles.Loaded() {
		if _, err := a.profiles.List(ctx); err != nil {
			fmt.Fprintln(a.out, "Could not load profiles:", err)
		}
		return false
	}

	a.printProfiles(state.SelectedProfileID)

	cmd, ok := a.readCommand("profiles")
	if !ok {
		return true
	}

	switch {
	case cmd == "":
	case cmd == "help":
		fmt.Fprintln(a.out, "Available commands: <number>, new, logout, exit")
	case cmd == "new":
		a.wantCreateProfile = true
	case cmd == "logout":
		a.logout(ctx)
	case cmd == "exit" || cmd == "quit":
		return true
	default:
		a.selectProfile(ctx, cmd)
	}
	return false
}

// printProfiles renders the picker: the built-in local profile first, then
// the fetched list in backend order.
func (a *App) printProfiles(selected string) {
	fmt.Fprintln(a.out, "Profiles:")
	fmt.Fprintf(a.out, "  0. Default (local)%s\n", selectionMark(services.DefaultProfileID, selected))
	for i, p := range a.profiles.Cached() {
		desc := ""
		if p.Description != "" {
			desc = " - " + p.Description
		}
		fmt.Fprintf(a.out, "  %d. %s%s%s\n", i+1, p.Name, desc, selectionMark(p.ID, selected))
	}
}

func selectionMark(id, selected string) string {
	if id != "" && id == selected {
		return " *"
	}
	return ""
}

// selectProfile resolves a numeric command against the printed list and
// persists the choice.
func (a *App) selectProfile(ctx context.Context, cmd string) {
	n, err := strconv.Atoi(cmd)
	if err != nil {
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		return
	}

	cached := a.profiles.Cached()
	var id string
	switch {
	case n == 0:
		id = services.DefaultProfileID
	case n >= 1 && n <= len(cached):
		id = cached[n-1].ID
	default:
		fmt.Fprintln(a.out, "No such profile:", n)
		return
	}

	if err := a.profiles.Select(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Could not select profile:", err)
		return
	}
	a.wantProfileList = false
}

// createProfileScreen runs the creation form: required name, optional
// description. An empty name cancels back to the picker. The created
// profile is selected immediately.
func (a *App) createProfileScreen(ctx context.Context) bool {
	name, err := getSimpleText(a.reader, "Profile name (empty to cancel)", a.out)
	if err != nil {
		return true
	}
	if strings.TrimSpace(name) == "" {
		a.wantCreateProfile = false
		return false
	}

	description, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return true
	}

	profile, err := a.profiles.Create(ctx, name, description)
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) {
			fmt.Fprintln(a.out, "  name: profile name is required")
			return false
		}
		a.printAuthError(err)
		return false
	}

	if err := a.profiles.Select(ctx, profile.ID); err != nil {
		fmt.Fprintln(a.out, "Could not select profile:", err)
	}
	a.wantCreateProfile = false
	a.wantProfileList = false
	fmt.Fprintf(a.out, "Profile %q created.\n", profile.Name)
	return false
}

// logout clears the token and every cached session artifact, landing the
// loop back on the auth screen.
func (a *App) logout(ctx context.Context) {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", err)
		return
	}
	a.wantCreateProfile = false
	a.wantProfileList = false
	a.expanded = make(map[string]bool)
	a.entries = nil
	fmt.Fprintln(a.out, "Logged out.")
}
