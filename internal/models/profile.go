package models

// Profile is a named, server-persisted grouping of bookmarks belonging to
// the authenticated user. The backend calls the same record a "bookmark set"
// on its older routes; both shapes are identical.
type Profile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// BookmarkSet is the alternate-route alias for Profile (/bookmark-set).
type BookmarkSet = Profile

// CreateProfileRequest is the POST /profile (and POST /bookmark-set)
// payload. Description is omitted entirely when blank, not sent as "".
type CreateProfileRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
