package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	gosync "sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contactRemote "taskboard/internal/contact/repository/remote"
	contactUC "taskboard/internal/contact/usecase"
	"taskboard/internal/model"
	"taskboard/internal/session"
	"taskboard/internal/sync"
	"taskboard/internal/task"
	taskRemote "taskboard/internal/task/repository/remote"
	taskUC "taskboard/internal/task/usecase"
	"taskboard/pkg/datemath"
	pkgLog "taskboard/pkg/log"
	"taskboard/pkg/remote"
)

// boardServer serves one task per user and fails every PATCH with a 503.
type boardServer struct {
	mu          gosync.Mutex
	patchTokens []string
}

func (b *boardServer) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login/", func(w http.ResponseWriter, r *http.Request) {
		var req remote.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		name, _, _ := strings.Cut(req.Email, "@")
		_ = json.NewEncoder(w).Encode(remote.AuthResponse{Token: "tok-" + name, ID: int64(len(name)), Email: req.Email})
	})
	mux.HandleFunc("/tasks/", func(w http.ResponseWriter, r *http.Request) {
		tasks := []model.Task{}
		if r.Header.Get("Authorization") == "Token tok-alice" {
			tasks = append(tasks, model.Task{ID: 1, Bucket: model.BucketToDo, Title: "Alice's task", DueDate: "2030-01-01", Prio: model.PrioLow, Category: model.CategoryUserStory})
		}
		_ = json.NewEncoder(w).Encode(tasks)
	})
	mux.HandleFunc("/tasks/1/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.patchTokens = append(b.patchTokens, r.Header.Get("Authorization"))
		b.mu.Unlock()
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	mux.HandleFunc("/combinedlist/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	return mux
}

func (b *boardServer) tokens() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string{}, b.patchTokens...)
}

func TestLogoutDropsPreviousUserState(t *testing.T) {
	ctx := context.Background()
	l := pkgLog.NewNop()

	board := &boardServer{}
	srv := httptest.NewServer(board.handler(t))
	t.Cleanup(srv.Close)

	stores := &storeLoader{}
	sessions := session.New(l, session.NewMemoryStore(), remote.NewClient(srv.URL, remote.StaticToken("")), stores.hooks(session.Config{}))
	client := remote.NewClient(srv.URL, sessions)
	outbox := sync.New(l, client, sync.Config{MaxAttempts: 1, Backoff: time.Millisecond})

	dm, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	tasks := taskUC.New(l, taskRemote.New(client, l), dm, taskUC.WithOutbox(outbox))
	contacts := contactUC.New(l, contactRemote.New(client, l), tasks, "en", contactUC.WithOutbox(outbox))
	outbox.RegisterApplier(remote.CollectionTasks, tasks)
	outbox.RegisterApplier(remote.CollectionContacts, contacts)
	stores.sessions, stores.tasks, stores.contacts, stores.outbox = sessions, tasks, contacts, outbox

	_, err = sessions.Login(ctx, "alice@example.com", "secret")
	require.NoError(t, err)
	require.Len(t, tasks.List(ctx), 1)
	require.NoError(t, stores.Ready(ctx))

	_, err = tasks.MoveBucket(ctx, model.Scope{UserID: "5"}, 1, model.BucketDone)
	require.ErrorIs(t, err, task.ErrSyncFailed)
	require.Len(t, outbox.Pending(), 1)

	require.NoError(t, sessions.Logout(ctx))
	assert.Empty(t, tasks.List(ctx))
	assert.Empty(t, contacts.List(ctx))
	assert.Empty(t, outbox.Pending())
	assert.Empty(t, outbox.Notifications())

	_, err = sessions.Login(ctx, "bob@example.com", "secret")
	require.NoError(t, err)
	assert.Empty(t, tasks.List(ctx))

	res, err := outbox.Retry(ctx)
	require.NoError(t, err)
	assert.Equal(t, sync.RetryResult{}, res)
	assert.Equal(t, []string{"Token tok-alice"}, board.tokens())
}

func TestLoginPurgesQueueOfReplacedSession(t *testing.T) {
	ctx := context.Background()
	l := pkgLog.NewNop()

	board := &boardServer{}
	srv := httptest.NewServer(board.handler(t))
	t.Cleanup(srv.Close)

	stores := &storeLoader{}
	sessions := session.New(l, session.NewMemoryStore(), remote.NewClient(srv.URL, remote.StaticToken("")), stores.hooks(session.Config{}))
	client := remote.NewClient(srv.URL, sessions)
	outbox := sync.New(l, client, sync.Config{MaxAttempts: 1, Backoff: time.Millisecond})

	dm, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	tasks := taskUC.New(l, taskRemote.New(client, l), dm, taskUC.WithOutbox(outbox))
	contacts := contactUC.New(l, contactRemote.New(client, l), tasks, "en", contactUC.WithOutbox(outbox))
	stores.sessions, stores.tasks, stores.contacts, stores.outbox = sessions, tasks, contacts, outbox

	_, err = sessions.Login(ctx, "alice@example.com", "secret")
	require.NoError(t, err)
	_, err = tasks.MoveBucket(ctx, model.Scope{UserID: "5"}, 1, model.BucketDone)
	require.ErrorIs(t, err, task.ErrSyncFailed)

	// A second login without a logout in between.
	_, err = sessions.Login(ctx, "bob@example.com", "secret")
	require.NoError(t, err)
	assert.Empty(t, outbox.Pending())
	assert.Empty(t, tasks.List(ctx))
}
