package middleware

import (
	"taskboard/internal/model"
	"taskboard/pkg/log"
)

// SessionReader exposes the current session. session.Manager implements it.
type SessionReader interface {
	Current() model.Session
}

type Middleware struct {
	l        log.Logger
	sessions SessionReader
	limiter  *rateLimiter
}

// New creates the HTTP middleware set. ratePerMin <= 0 disables rate limiting.
func New(l log.Logger, sessions SessionReader, ratePerMin int) Middleware {
	mw := Middleware{
		l:        l,
		sessions: sessions,
	}
	if ratePerMin > 0 {
		mw.limiter = newRateLimiter(ratePerMin)
	}
	return mw
}
