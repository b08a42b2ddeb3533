package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/booksy/internal/models"
)

// The /bookmark-set routes are the backend's older alias for profiles.
// Both remain live server-side; the popup now prefers /profile but keeps
// these methods for backends that have not migrated.

// BookmarkSets lists the session's bookmark sets.
func (c *Client) BookmarkSets(ctx context.Context) ([]models.BookmarkSet, error) {
	var out []models.BookmarkSet
	if err := c.do(ctx, http.MethodGet, "/bookmark-set", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateBookmarkSet creates a bookmark set and returns the record.
func (c *Client) CreateBookmarkSet(ctx context.Context, req models.CreateProfileRequest) (*models.BookmarkSet, error) {
	var out models.BookmarkSet
	if err := c.do(ctx, http.MethodPost, "/bookmark-set", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
