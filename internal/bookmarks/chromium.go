package bookmarks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Chromium-family browsers keep one "Bookmarks" JSON file per profile
// directory. The schema types below mirror that file; mapping into Node
// keeps the rest of the popup independent of the on-disk format.

type chromiumNode struct {
	ID       string         `json:"id"`
	GUID     string         `json:"guid"`
	Name     string         `json:"name"`
	Type     string         `json:"type"`
	URL      string         `json:"url"`
	Children []chromiumNode `json:"children"`
}

type chromiumFile struct {
	Version int                     `json:"version"`
	Roots   map[string]chromiumNode `json:"roots"`
}

// chromiumRootOrder is the display order of the top-level roots. Unknown
// extra roots are ignored.
var chromiumRootOrder = []string{"bookmark_bar", "other", "synced"}

// Source yields a fresh snapshot of the native bookmark tree. The snapshot
// is immutable for the duration of one render cycle and is never persisted.
type Source interface {
	Tree(ctx context.Context) (*Node, error)
}

// FileSource reads a Chromium bookmarks file on every call.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Tree parses the bookmarks file into a synthetic-root Node whose children
// are the browser's top-level roots (bookmarks bar, other, synced).
func (s *FileSource) Tree(_ context.Context) (*Node, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read bookmarks file: %w", err)
	}
	return parseChromium(data)
}

func parseChromium(data []byte) (*Node, error) {
	var f chromiumFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse bookmarks file: %w", err)
	}
	if f.Roots == nil {
		return nil, fmt.Errorf("parse bookmarks file: no roots")
	}

	root := &Node{ID: "0", Children: []Node{}}
	for _, key := range chromiumRootOrder {
		cn, ok := f.Roots[key]
		if !ok {
			continue
		}
		root.Children = append(root.Children, mapChromiumNode(cn))
	}
	return root, nil
}

func mapChromiumNode(cn chromiumNode) Node {
	n := Node{ID: cn.ID, Title: cn.Name}
	if cn.Type == "url" {
		n.URL = cn.URL
		return n
	}
	// Anything that is not a url entry is treated as a folder. Children is
	// always non-nil for folders so the folder classification holds for
	// empty ones too.
	n.Children = make([]Node, 0, len(cn.Children))
	for _, c := range cn.Children {
		n.Children = append(n.Children, mapChromiumNode(c))
	}
	return n
}
