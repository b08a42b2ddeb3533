package bookmarks

// Entry is one printable row of the bookmark listing.
type Entry struct {
	Depth    int
	Folder   bool
	Expanded bool
	ID       string
	Title    string
	URL      string
	Favicon  string
}

// Flatten turns a sequence of sibling nodes into the rows the screen
// prints, depth-first. Folders are collapsible and closed by default;
// expanded holds the ids of the folders currently open, each sibling
// independent of the others. Children of a closed folder are not walked.
// Leaves get a favicon derived from their URL via faviconEndpoint.
//
// The transform is pure: the same inputs always produce the same rows.
func Flatten(nodes []Node, expanded map[string]bool, faviconEndpoint string) []Entry {
	return flatten(nodes, 0, expanded, faviconEndpoint, nil)
}

func flatten(nodes []Node, depth int, expanded map[string]bool, endpoint string, out []Entry) []Entry {
	for _, n := range nodes {
		if n.IsFolder() {
			open := expanded[n.ID]
			out = append(out, Entry{
				Depth:    depth,
				Folder:   true,
				Expanded: open,
				ID:       n.ID,
				Title:    n.Title,
			})
			if open {
				out = flatten(n.Children, depth+1, expanded, endpoint, out)
			}
			continue
		}
		out = append(out, Entry{
			Depth:   depth,
			ID:      n.ID,
			Title:   n.Title,
			URL:     n.URL,
			Favicon: FaviconURL(endpoint, n.URL),
		})
	}
	return out
}
