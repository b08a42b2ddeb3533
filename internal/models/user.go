// Package models defines the data types exchanged with the Booksy backend
// and the client-only types used by the popup screens.
package models

// User is the authenticated account as returned by /auth/me and by the
// login/register responses.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// LoginRequest is the /auth/login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the /auth/register payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by /auth/login: the bearer token plus the user
// it belongs to.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

// RegisterResponse is returned by /auth/register. Message is a
// human-readable confirmation intended for direct display. Older backends
// return an access token here as well; newer ones expect a follow-up login,
// so AccessToken may be empty.
type RegisterResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"accessToken,omitempty"`
	User        User   `json:"user"`
}
