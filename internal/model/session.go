package model

// SessionState is whether a token is present.
type SessionState string

const (
	SessionAnonymous     SessionState = "anonymous"
	SessionAuthenticated SessionState = "authenticated"
)

// GuestUserIndex is the user index stored for guest sessions.
const GuestUserIndex int64 = -1

// Session is the persisted authentication state.
type Session struct {
	Token            string `json:"token"`
	CurrentUserIndex int64  `json:"currentUserIndex"`
	Username         string `json:"username"`
	Email            string `json:"email"`
}

// State derives the session state from the token.
func (s Session) State() SessionState {
	if s.Token == "" {
		return SessionAnonymous
	}
	return SessionAuthenticated
}

// IsGuest reports whether this is the shared guest session.
func (s Session) IsGuest() bool {
	return s.Token != "" && s.CurrentUserIndex == GuestUserIndex
}
