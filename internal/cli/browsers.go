package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/booksy/internal/bookmarks"
	"github.com/dmitrijs2005/booksy/internal/browsers"
)

// listBrowsers prints the browsers connected during this run.
func (a *App) listBrowsers(ctx context.Context) {
	if len(a.connected) == 0 {
		fmt.Fprintln(a.out, "No browsers connected. Use 'addbrowser' to connect one.")
		return
	}
	fmt.Fprintln(a.out, "Connected browsers:")
	for _, b := range a.connected {
		fmt.Fprintf(a.out, "  %s (%s, profile %s, %d bookmarks)\n",
			b.Name, b.Type, b.ProfileName, b.BookmarkCount)
	}
}

// addBrowser runs the add-browser flow: detect installed browsers, let the
// user pick one, and record it as an in-memory entry with its current
// bookmark count.
func (a *App) addBrowser(ctx context.Context) {
	d, err := browsers.NewDetector("")
	if err != nil {
		fmt.Fprintln(a.out, "Browser detection unavailable:", err)
		return
	}
	found, err := d.Detect(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Browser detection failed:", err)
		return
	}
	if len(found) == 0 {
		fmt.Fprintln(a.out, "No browsers found.")
		return
	}

	fmt.Fprintln(a.out, "Detected browsers:")
	for i, det := range found {
		fmt.Fprintf(a.out, "  %d. %s (profile %s)\n", i+1, det.BrowserName, det.ProfileName)
	}

	cmd, err := getSimpleText(a.reader, "Connect which? (empty to cancel)", a.out)
	if err != nil || cmd == "" {
		return
	}
	n, err := strconv.Atoi(cmd)
	if err != nil || n < 1 || n > len(found) {
		fmt.Fprintln(a.out, "No such browser:", cmd)
		return
	}

	det := found[n-1]
	entry := browsers.Connect(det)
	if tree, err := bookmarks.NewFileSource(det.BookmarksPath).Tree(ctx); err == nil {
		entry.BookmarkCount = tree.Count()
	}

	a.connected = append(a.connected, entry)
	fmt.Fprintf(a.out, "Connected %s (%s).\n", entry.Name, entry.ProfileName)
}
