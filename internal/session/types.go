package session

import "context"

// Persisted keys, matching what the browser client kept in local storage.
const (
	KeyToken            = "token"
	KeyCurrentUserIndex = "currentUserIndex"
	KeyUsername         = "username"
	KeyEmail            = "email"
)

// GuestUsername is shown for guest sessions.
const GuestUsername = "Guest"

// RegisterInput is the registration form.
type RegisterInput struct {
	Username         string
	Email            string
	Password         string
	RepeatedPassword string
}

// GuardResult is the outcome of a page access check. Redirect is empty when
// the page may be shown as is.
type GuardResult struct {
	Page     string `json:"page"`
	Redirect string `json:"redirect,omitempty"`
}

// Config controls guest access, page guarding and the session hooks.
type Config struct {
	GuestToken  string
	LoginPage   string
	LandingPage string
	// PublicPages are reachable without a session, besides the login page.
	PublicPages []string
	// OnStart runs after a login, registration or guest session is stored.
	// Its error is logged and does not fail the login.
	OnStart func(ctx context.Context) error
	// OnEnd runs after a logout cleared the stored session. Its error is
	// logged and does not fail the logout.
	OnEnd func(ctx context.Context) error
}
