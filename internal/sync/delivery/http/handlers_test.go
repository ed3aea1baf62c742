package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/sync"
	pkgLog "taskboard/pkg/log"
)

type fakeOutbox struct {
	sync.Outbox
	retryErr error
}

func (f *fakeOutbox) Pending() []sync.Op {
	return []sync.Op{{ID: "a", Collection: "tasks", Kind: sync.KindPatch}}
}

func (f *fakeOutbox) Failed() []sync.Op {
	return []sync.Op{{ID: "b", Collection: "contacts", Kind: sync.KindUpdate, Error: "remote API PUT /contacts/2/ error 400"}}
}

func (f *fakeOutbox) Notifications() []sync.Notification { return nil }

func (f *fakeOutbox) Retry(ctx context.Context) (sync.RetryResult, error) {
	return sync.RetryResult{Succeeded: 1}, f.retryErr
}

type sessions struct{ token string }

func (s sessions) Current() model.Session { return model.Session{Token: s.token} }

func serve(ob sync.Outbox, token, method, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(pkgLog.NewNop(), ob), middleware.New(pkgLog.NewNop(), sessions{token: token}, 0))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestStatus(t *testing.T) {
	w := serve(&fakeOutbox{}, "t", http.MethodGet, "/api/v1/sync")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"notifications":[]`)
	assert.Contains(t, w.Body.String(), `"kind":"patch"`)
	assert.Contains(t, w.Body.String(), `"failed":[{"id":"b"`)

	w = serve(&fakeOutbox{}, "", http.MethodGet, "/api/v1/sync")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRetry(t *testing.T) {
	w := serve(&fakeOutbox{}, "t", http.MethodPost, "/api/v1/sync/retry")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"succeeded":1`)

	w = serve(&fakeOutbox{retryErr: sync.ErrRetryInProgress}, "t", http.MethodPost, "/api/v1/sync/retry")
	assert.Equal(t, http.StatusConflict, w.Code)
}
