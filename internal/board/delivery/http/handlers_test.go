package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/middleware"
	"taskboard/internal/model"
	pkgLog "taskboard/pkg/log"
)

type staticTasks []model.Task

func (s staticTasks) List(ctx context.Context) []model.Task { return s }

type staticContacts []model.Contact

func (s staticContacts) List(ctx context.Context) []model.Contact { return s }

type loggedIn struct{}

func (loggedIn) Current() model.Session {
	return model.Session{Token: "t", CurrentUserIndex: 1, Username: "Anna Berg"}
}

func newRouter(t *testing.T, now time.Time) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tasks := staticTasks{
		{ID: 1, Bucket: model.BucketDone, Title: "Ship", Prio: model.PrioUrgent, DueDate: "2024-05-20", Assigned: []int64{7, 8, 99}},
		{ID: 2, Bucket: model.BucketToDo, Title: "Plan", Prio: model.PrioLow, DueDate: "2024-06-01",
			Subtasks: []model.Subtask{{Title: "a", Done: true}, {Title: "b"}}},
	}
	contacts := staticContacts{
		{ID: 7, Username: "Anna Berg", BgColor: "#112233"},
		{ID: 8, Username: "Ben Ode", BgColor: "#445566"},
	}

	h := New(pkgLog.NewNop(), tasks, contacts, time.UTC).(*handler)
	h.now = func() time.Time { return now }

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), h, middleware.New(pkgLog.NewNop(), loggedIn{}, 0))
	return r
}

func get(t *testing.T, r *gin.Engine, path string, out any) int {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	return w.Code
}

func TestBoard(t *testing.T) {
	r := newRouter(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))

	var out struct {
		Data boardResp `json:"data"`
	}
	require.Equal(t, http.StatusOK, get(t, r, "/api/v1/board", &out))
	cols := out.Data.Columns
	require.Len(t, cols, 4)

	assert.Equal(t, "to-do", cols[0].Bucket)
	assert.Equal(t, 50, cols[0].Cards[0].Progress.Percent)
	assert.Equal(t, "No tasks In progress", cols[1].NoTasksLabel)

	done := cols[3].Cards
	require.Len(t, done, 1)
	require.Len(t, done[0].Assignees, 2)
	assert.Equal(t, "AB", done[0].Assignees[0].Initials)
	assert.Equal(t, "#445566", done[0].Assignees[1].BgColor)
	assert.Equal(t, "20/05/2024", done[0].DueDateDisplay)
}

func TestBoardSearch(t *testing.T) {
	r := newRouter(t, time.Now())

	var out struct {
		Data boardResp `json:"data"`
	}
	require.Equal(t, http.StatusOK, get(t, r, "/api/v1/board?search=PLA", &out))
	assert.False(t, out.Data.NoResults)
	assert.Len(t, out.Data.Columns[0].Cards, 1)
	assert.Empty(t, out.Data.Columns[3].Cards)

	require.Equal(t, http.StatusOK, get(t, r, "/api/v1/board?search=missing", &out))
	assert.True(t, out.Data.NoResults)
}

func TestSummary(t *testing.T) {
	r := newRouter(t, time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC))

	var out struct {
		Data summaryResp `json:"data"`
	}
	require.Equal(t, http.StatusOK, get(t, r, "/api/v1/board/summary", &out))
	assert.Equal(t, "Good afternoon", out.Data.Greeting)
	assert.Equal(t, "Anna Berg", out.Data.Username)
	assert.Equal(t, 2, out.Data.Total)
	assert.Equal(t, 1, out.Data.Counts["done"])
	assert.Equal(t, 1, out.Data.Urgent)
	assert.Equal(t, "May 20, 2024", out.Data.UpcomingUrgentDisplay)
}
