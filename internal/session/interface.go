package session

import (
	"context"

	"taskboard/internal/model"
	"taskboard/pkg/remote"
)

// Store is a persisted string key/value map.
type Store interface {
	Get(key string) (string, bool)
	Set(values map[string]string) error
	Delete(key string) error
	Clear() error
}

// AuthClient performs login and registration. *remote.Client implements it.
type AuthClient interface {
	Login(ctx context.Context, req remote.LoginRequest) (remote.AuthResponse, error)
	Register(ctx context.Context, req remote.RegisterRequest) (remote.AuthResponse, error)
}

// Manager owns the session state machine: anonymous or authenticated.
type Manager interface {
	Login(ctx context.Context, email, password string) (model.Session, error)
	Register(ctx context.Context, input RegisterInput) (model.Session, error)
	// Guest starts the shared guest session.
	Guest(ctx context.Context) (model.Session, error)
	// Logout clears all persisted state.
	Logout(ctx context.Context) error

	Current() model.Session
	State() model.SessionState
	// Token implements remote.TokenSource.
	Token() string

	// Guard decides whether page can be shown or where to redirect.
	Guard(page string) GuardResult
}
