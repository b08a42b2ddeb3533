// Package cli provides the interactive Booksy popup client.
//
// It wires configuration, the local SQLite state store, the backend API
// client, and the application services behind a screen loop. On every
// iteration the loop re-derives the visible screen from the session state
// (stored token, user fetch, profile selection) and dispatches the user's
// command to that screen's handler.
//
// Screens:
//   - auth: combined login/register form with inline validation errors
//   - profile selection: pick, create, or refresh profiles
//   - create profile: name plus optional description
//   - main: collapsible bookmark tree, sync, browsers, logout
//
// The loop is started via App.Run(ctx), which blocks until the user exits.
package cli
