package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/booksy/internal/client"
	"github.com/dmitrijs2005/booksy/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// authScreen handles one command on the combined login/register screen.
// Returns true when the user asked to exit.
func (a *App) authScreen(ctx context.Context) bool {
	cmd, ok := a.readCommand("auth")
	if !ok {
		return true
	}

	switch cmd {
	case "":
	case "help":
		fmt.Fprintln(a.out, "Available commands: login, register, exit")
	case "login":
		a.login(ctx)
	case "register":
		a.register(ctx)
	case "exit", "quit":
		return true
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
	return false
}

// login prompts for credentials and authenticates. Validation errors are
// rendered inline per field and never reach the backend; backend errors are
// shown as a banner with the server's message verbatim.
func (a *App) login(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return
	}
	password, err := getPassword(a.out)
	if err != nil {
		return
	}

	if _, err := a.session.Login(ctx, email, password); err != nil {
		a.printAuthError(err)
		return
	}
	fmt.Fprintln(a.out, "Logged in.")
}

// register prompts for the registration form. Backends that return a token
// on register leave the user signed in; otherwise the confirmation message
// is shown and the user logs in normally.
func (a *App) register(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return
	}
	password, err := getPassword(a.out)
	if err != nil {
		return
	}

	_, msg, err := a.session.Register(ctx, username, email, password)
	if err != nil {
		a.printAuthError(err)
		return
	}
	if msg == "" {
		msg = "Registration successful."
	}
	fmt.Fprintln(a.out, msg)
}

func (a *App) printAuthError(err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		fields := make([]string, 0, len(verr.Fields))
		for f := range verr.Fields {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			fmt.Fprintf(a.out, "  %s: %s\n", f, verr.Fields[f])
		}
		return
	}

	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		fmt.Fprintln(a.out, "Error:", apiErr.Message)
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(a.out, "Error: server unavailable")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
}
