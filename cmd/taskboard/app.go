package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskboard/config"
	"taskboard/internal/contact"
	contactRemote "taskboard/internal/contact/repository/remote"
	contactUC "taskboard/internal/contact/usecase"
	"taskboard/internal/model"
	"taskboard/internal/session"
	"taskboard/internal/sync"
	"taskboard/internal/task"
	taskRemote "taskboard/internal/task/repository/remote"
	taskUC "taskboard/internal/task/usecase"
	"taskboard/pkg/datemath"
	"taskboard/pkg/log"
	"taskboard/pkg/remote"
)

var errNotLoggedIn = errors.New("not logged in, run `taskboard login` or `taskboard guest` first")

// app is the store stack used by the commands. It mirrors cmd/api without
// the HTTP layer.
type app struct {
	sessions session.Manager
	outbox   sync.Outbox
	tasks    task.UseCase
	contacts contact.UseCase
	loc      *time.Location
}

func newApp(cfg *config.Config, l log.Logger) (*app, error) {
	store, err := session.NewFileStore(cfg.Session.File)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	authClient := remote.NewClient(cfg.Remote.BaseURL, remote.StaticToken(""), remote.WithTimeout(cfg.Remote.Timeout))
	sessions := session.New(l, store, authClient, session.Config{
		GuestToken:  cfg.Remote.GuestToken,
		LoginPage:   cfg.Session.LoginPage,
		LandingPage: cfg.Session.LandingPage,
		PublicPages: cfg.Session.PublicPages,
	})

	client := remote.NewClient(cfg.Remote.BaseURL, sessions, remote.WithTimeout(cfg.Remote.Timeout))
	outbox := sync.New(l, client, sync.Config{
		MaxAttempts: cfg.Sync.MaxAttempts,
		Backoff:     cfg.Sync.Backoff,
	})

	dateMath, err := datemath.NewParser(cfg.Board.Timezone)
	if err != nil {
		dateMath, _ = datemath.NewParser("UTC")
	}

	tasks := taskUC.New(l, taskRemote.New(client, l), dateMath, taskUC.WithOutbox(outbox))
	contacts := contactUC.New(l, contactRemote.New(client, l), tasks, cfg.Contacts.Locale, contactUC.WithOutbox(outbox))
	outbox.RegisterApplier(remote.CollectionTasks, tasks)
	outbox.RegisterApplier(remote.CollectionContacts, contacts)

	return &app{
		sessions: sessions,
		outbox:   outbox,
		tasks:    tasks,
		contacts: contacts,
		loc:      dateMath.Location(),
	}, nil
}

// load fills both stores. It needs a stored session.
func (a *app) load(ctx context.Context) (model.Scope, error) {
	s := a.sessions.Current()
	if s.State() != model.SessionAuthenticated {
		return model.Scope{}, errNotLoggedIn
	}
	if err := a.tasks.Load(ctx); err != nil {
		return model.Scope{}, fmt.Errorf("load tasks: %w", err)
	}
	if err := a.contacts.Load(ctx); err != nil {
		return model.Scope{}, fmt.Errorf("load contacts: %w", err)
	}
	return model.NewScope(s), nil
}

// flush replays queued operations once. The outbox lives only as long as the
// process, so anything still pending afterwards is reported as lost.
func (a *app) flush(ctx context.Context) error {
	if len(a.outbox.Pending()) == 0 {
		return nil
	}
	res, err := a.outbox.Retry(ctx)
	if err != nil {
		return err
	}
	if res.Remaining > 0 {
		return fmt.Errorf("%d change(s) could not be synced with the remote storage", res.Remaining)
	}
	if res.Rejected > 0 {
		return fmt.Errorf("%d change(s) were rejected by the remote storage", res.Rejected)
	}
	return nil
}

// retryQueued flushes the outbox when a mutation failed with a queued sync error,
// and returns any other error unchanged.
func (a *app) retryQueued(ctx context.Context, err error) error {
	if errors.Is(err, task.ErrSyncFailed) || errors.Is(err, contact.ErrSyncFailed) {
		return a.flush(ctx)
	}
	return err
}
