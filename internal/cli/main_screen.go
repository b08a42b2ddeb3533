package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/booksy/internal/bookmarks"
	"github.com/dmitrijs2005/booksy/internal/router"
)

// mainScreen renders the bookmark tree and handles one command. The tree
// is re-read from the browser file on every entry so external edits show
// up without restarting.
func (a *App) mainScreen(ctx context.Context, state router.State) bool {
	tree := a.loadTree(ctx)

	if tree == nil || len(tree.Children) == 0 {
		a.entries = nil
		fmt.Fprintln(a.out, "No Bookmarks")
	} else {
		a.entries = bookmarks.Flatten(tree.Children, a.expanded, a.config.FaviconEndpoint)
		a.printEntries()
	}

	cmd, ok := a.readCommand("main")
	if !ok {
		return true
	}

	switch {
	case cmd == "":
	case cmd == "help":
		fmt.Fprintln(a.out, "Available commands: <number>, sync, browsers, addbrowser, profiles, logout, exit")
	case cmd == "sync":
		a.syncer.Dispatch(ctx, state.SelectedProfileID, tree)
	case cmd == "browsers":
		a.listBrowsers(ctx)
	case cmd == "addbrowser":
		a.addBrowser(ctx)
	case cmd == "profiles":
		a.wantProfileList = true
	case cmd == "logout":
		a.logout(ctx)
	case cmd == "exit" || cmd == "quit":
		return true
	default:
		a.activateEntry(cmd)
	}
	return false
}

func (a *App) loadTree(ctx context.Context) *bookmarks.Node {
	source := a.bookmarkSource(ctx)
	if source == nil {
		return nil
	}
	tree, err := source.Tree(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not read bookmarks:", err)
		return nil
	}
	return tree
}

// printEntries renders the flattened tree with one number per visible row.
// Folders show their open/closed state; leaves show the target URL.
func (a *App) printEntries() {
	for i, e := range a.entries {
		indent := strings.Repeat("  ", e.Depth)
		if e.Folder {
			marker := "[+]"
			if e.Expanded {
				marker = "[-]"
			}
			fmt.Fprintf(a.out, "%3d. %s%s %s\n", i+1, indent, marker, e.Title)
			continue
		}
		fmt.Fprintf(a.out, "%3d. %s%s (%s)\n", i+1, indent, e.Title, e.URL)
	}
}

// activateEntry resolves a numeric command against the printed rows:
// folders toggle open/closed, leaves print their URL and favicon.
func (a *App) activateEntry(cmd string) {
	n, err := strconv.Atoi(cmd)
	if err != nil {
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		return
	}
	if n < 1 || n > len(a.entries) {
		fmt.Fprintln(a.out, "No such entry:", n)
		return
	}

	e := a.entries[n-1]
	if e.Folder {
		if a.expanded[e.ID] {
			delete(a.expanded, e.ID)
		} else {
			a.expanded[e.ID] = true
		}
		return
	}
	fmt.Fprintln(a.out, e.URL)
	fmt.Fprintln(a.out, "favicon:", e.Favicon)
}
