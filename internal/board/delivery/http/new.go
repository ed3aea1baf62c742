package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/model"
	"taskboard/pkg/log"
)

// TaskLister supplies the task snapshot. task.UseCase implements it.
type TaskLister interface {
	List(ctx context.Context) []model.Task
}

// ContactLister supplies contacts for assignee badges. contact.UseCase implements it.
type ContactLister interface {
	List(ctx context.Context) []model.Contact
}

// Handler serves the board and summary pages.
type Handler interface {
	Board(c *gin.Context)
	Summary(c *gin.Context)
}

type handler struct {
	l        log.Logger
	tasks    TaskLister
	contacts ContactLister
	loc      *time.Location
	now      func() time.Time
}

// New creates the board handler. loc decides the greeting hour; nil means UTC.
func New(l log.Logger, tasks TaskLister, contacts ContactLister, loc *time.Location) Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{
		l:        l,
		tasks:    tasks,
		contacts: contacts,
		loc:      loc,
		now:      time.Now,
	}
}
