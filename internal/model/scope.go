package model

import (
	"context"
	"strconv"
)

// Scope carries the caller identity through usecases.
type Scope struct {
	UserID   string
	Username string
	Email    string
}

// NewScope builds a Scope from the current session.
func NewScope(s Session) Scope {
	return Scope{
		UserID:   strconv.FormatInt(s.CurrentUserIndex, 10),
		Username: s.Username,
		Email:    s.Email,
	}
}

type scopeCtxKey struct{}

// SetScopeToContext returns a child context carrying sc.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the scope set by the auth middleware, or a zero Scope.
func GetScopeFromContext(ctx context.Context) Scope {
	sc, _ := ctx.Value(scopeCtxKey{}).(Scope)
	return sc
}
