package main

import (
	"context"
	"fmt"
	gosync "sync"

	"taskboard/internal/model"
	"taskboard/internal/session"
)

type memStore interface {
	Load(ctx context.Context) error
	Reset(ctx context.Context)
}

type stateReader interface {
	State() model.SessionState
}

type purger interface {
	Purge(ctx context.Context) int
}

// storeLoader fills the task and contact stores once a token is available and
// empties them, along with the outbox, when the session ends.
type storeLoader struct {
	sessions stateReader
	tasks    memStore
	contacts memStore
	outbox   purger

	mu     gosync.Mutex
	loaded bool
}

// hooks wires the session start and end into cfg.
func (s *storeLoader) hooks(cfg session.Config) session.Config {
	cfg.OnStart = s.Start
	cfg.OnEnd = s.End
	return cfg
}

// Load fetches tasks then contacts. It is a no-op for anonymous sessions.
func (s *storeLoader) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessions.State() != model.SessionAuthenticated {
		return nil
	}
	if err := s.tasks.Load(ctx); err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	if err := s.contacts.Load(ctx); err != nil {
		return fmt.Errorf("load contacts: %w", err)
	}
	s.loaded = true
	return nil
}

// Start drops whatever the previous session left queued, then fetches the
// stores for the session that just started.
func (s *storeLoader) Start(ctx context.Context) error {
	s.outbox.Purge(ctx)
	return s.Reload(ctx)
}

// End empties the stores and the outbox so nothing of the previous user is
// shown or replayed under the next token.
func (s *storeLoader) End(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loaded = false
	s.outbox.Purge(ctx)
	s.tasks.Reset(ctx)
	s.contacts.Reset(ctx)
	return nil
}

// Reload forgets the previous load and fetches the stores again.
func (s *storeLoader) Reload(ctx context.Context) error {
	s.mu.Lock()
	s.loaded = false
	s.mu.Unlock()
	return s.Load(ctx)
}

// Ready reports whether the stores mirror the remote collections. A failed
// initial load is retried here.
func (s *storeLoader) Ready(ctx context.Context) error {
	s.mu.Lock()
	done := s.loaded
	s.mu.Unlock()
	if done {
		return nil
	}
	return s.Load(ctx)
}
