package remote

import "time"

// Remote collection names.
const (
	CollectionTasks    = "tasks"
	CollectionContacts = "contacts"
	// CollectionCombined lists contacts together with registered users.
	CollectionCombined = "combinedlist"
	CollectionProfile  = "profile"
)

// TokenSource supplies the auth token attached to every request.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to TokenSource.
type TokenFunc func() string

// Token implements TokenSource.
func (f TokenFunc) Token() string { return f() }

// StaticToken is a TokenSource that always returns the same token.
type StaticToken string

// Token implements TokenSource.
func (s StaticToken) Token() string { return string(s) }

// Observer receives one call per finished request. status is 0 when the
// request failed before a response arrived.
type Observer func(method, collection string, status int, elapsed time.Duration)

// LoginRequest is the body for POST /auth/login/.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body for POST /auth/registration/.
type RegisterRequest struct {
	Username         string `json:"username"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	RepeatedPassword string `json:"repeated_password"`
}

// AuthResponse is returned by the login and registration endpoints.
type AuthResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// UserIndex returns the user identifier; some deployments send user_id, others id.
func (r AuthResponse) UserIndex() int64 {
	if r.UserID != 0 {
		return r.UserID
	}
	return r.ID
}
