package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/booksy/internal/models"
)

// Profiles lists all profiles belonging to the session.
func (c *Client) Profiles(ctx context.Context) ([]models.Profile, error) {
	var out []models.Profile
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProfile creates a profile and returns the server-side record.
func (c *Client) CreateProfile(ctx context.Context, req models.CreateProfileRequest) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, http.MethodPost, "/profile", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
