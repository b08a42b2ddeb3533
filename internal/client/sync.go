package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/booksy/internal/bookmarks"
)

// SyncBookmarks pushes the full bookmark tree for one profile. The backend
// replies 2xx with no meaningful body.
func (c *Client) SyncBookmarks(ctx context.Context, profileID string, nodes []bookmarks.Node) error {
	path := "/profiles/" + url.PathEscape(profileID) + "/bookmarks/sync"
	return c.do(ctx, http.MethodPost, path, nodes, nil)
}
