package usecase

import (
	"sync"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/internal/task/repository"
	outbox "taskboard/internal/sync"
	"taskboard/pkg/datemath"
	pkgLog "taskboard/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	dateMath   *datemath.Parser
	outbox     outbox.Recorder
	calendar   task.Calendar
	calendarID string
	counter    task.MutationCounter
	now        func() time.Time

	// opMu serializes mutations across the remote round trip.
	opMu  sync.Mutex
	mu    sync.RWMutex
	tasks []model.Task
}

// Option configures the task UseCase.
type Option func(*implUseCase)

// WithOutbox queues retryable remote failures in r.
func WithOutbox(r outbox.Recorder) Option {
	return func(uc *implUseCase) {
		uc.outbox = r
	}
}

// WithCalendar mirrors due dates of new tasks as all-day events.
func WithCalendar(c task.Calendar, calendarID string) Option {
	return func(uc *implUseCase) {
		uc.calendar = c
		uc.calendarID = calendarID
	}
}

// WithMutationCounter counts successful mutations.
func WithMutationCounter(c task.MutationCounter) Option {
	return func(uc *implUseCase) {
		uc.counter = c
	}
}

// WithClock overrides time.Now for due date checks.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.now = now
	}
}

// New creates a new task UseCase instance. A nil dateMath uses UTC.
func New(l pkgLog.Logger, repo repository.Repository, dateMath *datemath.Parser, opts ...Option) task.UseCase {
	if dateMath == nil {
		dateMath, _ = datemath.NewParser("UTC")
	}
	uc := &implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
		now:      time.Now,
		tasks:    []model.Task{},
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
