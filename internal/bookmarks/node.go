// Package bookmarks models the host browser's native bookmark tree and the
// pure transforms the popup applies to it: reading a snapshot from the
// browser's on-disk store and flattening it into a displayable listing.
package bookmarks

// Node is one entry of the native bookmark tree rooted at a single
// synthetic root. Folders carry Children; links carry a URL.
type Node struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// IsFolder reports whether n renders as an expandable folder: no URL and a
// children list present. A folder with an empty (but present) children list
// still counts as a folder.
func (n Node) IsFolder() bool {
	return n.URL == "" && n.Children != nil
}

// Count returns the number of link entries under n, recursively.
func (n Node) Count() int {
	if !n.IsFolder() {
		return 1
	}
	total := 0
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}
