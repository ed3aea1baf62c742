package usecase

import (
	"context"
	"time"

	"taskboard/internal/model"
	outbox "taskboard/internal/sync"
	"taskboard/internal/task/repository"
	"taskboard/pkg/datemath"
	pkgRemote "taskboard/pkg/remote"
	"taskboard/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var errUnavailable = &pkgRemote.APIError{StatusCode: 503, Body: []byte("unavailable")}

// mockRepo is an in-memory remote. failWith makes every call fail.
type mockRepo struct {
	tasks    []model.Task
	nextID   int64
	failWith error
	calls    int
	patches  []repository.PatchTaskOptions
}

func newMockRepo(tasks ...model.Task) *mockRepo {
	r := &mockRepo{nextID: 100}
	for _, t := range tasks {
		r.tasks = append(r.tasks, t.Normalized())
	}
	return r
}

func (r *mockRepo) ListTasks(ctx context.Context) ([]model.Task, error) {
	r.calls++
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]model.Task, len(r.tasks))
	for i, t := range r.tasks {
		out[i] = t.Clone()
	}
	return out, nil
}

func (r *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	r.calls++
	if r.failWith != nil {
		return model.Task{}, r.failWith
	}
	r.nextID++
	t := model.Task{
		ID:          r.nextID,
		Bucket:      opt.Bucket,
		Title:       opt.Title,
		Description: opt.Description,
		DueDate:     opt.DueDate,
		Prio:        opt.Prio,
		Category:    opt.Category,
		Assigned:    opt.Assigned,
		Subtasks:    opt.Subtasks,
	}
	r.tasks = append(r.tasks, t.Clone())
	return t, nil
}

func (r *mockRepo) PatchTask(ctx context.Context, id int64, opt repository.PatchTaskOptions) (model.Task, error) {
	r.calls++
	r.patches = append(r.patches, opt)
	if r.failWith != nil {
		return model.Task{}, r.failWith
	}
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks[i] = applyPatch(r.tasks[i], opt)
			return r.tasks[i].Clone(), nil
		}
	}
	return model.Task{}, &pkgRemote.APIError{StatusCode: 404}
}

func (r *mockRepo) DeleteTask(ctx context.Context, id int64) error {
	r.calls++
	if r.failWith != nil {
		return r.failWith
	}
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return &pkgRemote.APIError{StatusCode: 404}
}

// mockRecorder reports pending[id] from HasPending.
type mockRecorder struct {
	records []outbox.RecordInput
	pending map[int64]bool
}

func (m *mockRecorder) HasPending(collection string, recordID int64) bool {
	return m.pending[recordID]
}

func (m *mockRecorder) Record(ctx context.Context, in outbox.RecordInput) (outbox.Op, error) {
	m.records = append(m.records, in)
	return outbox.Op{ID: "op", Kind: in.Kind, RecordID: in.RecordID}, nil
}

type mockCalendar struct {
	requests []gcalendar.CreateEventRequest
	err      error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "evt-1"}, nil
}

type mockCounter struct {
	ops map[string]int
}

func (m *mockCounter) Inc(op string) {
	if m.ops == nil {
		m.ops = make(map[string]int)
	}
	m.ops[op]++
}

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

// newTestUseCase returns a loaded store over repo.
func newTestUseCase(repo *mockRepo, opts ...Option) *implUseCase {
	dm, _ := datemath.NewParser("UTC")
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	uc := New(&mockLogger{}, repo, dm, opts...).(*implUseCase)
	if err := uc.Load(context.Background()); err != nil {
		panic(err)
	}
	repo.calls = 0
	return uc
}

func seedTasks() []model.Task {
	return []model.Task{
		{ID: 1, Bucket: model.BucketToDo, Title: "Write docs", DueDate: "2024-05-10", Prio: model.PrioUrgent, Category: model.CategoryUserStory, Assigned: []int64{7, 8}},
		{ID: 2, Bucket: model.BucketInProgress, Title: "Build API", DueDate: "2024-05-12", Prio: model.PrioMedium, Category: model.CategoryTechnicalTask, Assigned: []int64{8}},
		{ID: 3, Bucket: model.BucketToDo, Title: "Review", DueDate: "2024-05-20", Prio: model.PrioLow, Category: model.CategoryTechnicalTask,
			Subtasks: []model.Subtask{{Title: "read"}, {Title: "comment", Done: true}}},
		{ID: 4, Bucket: model.BucketDone, Title: "Kickoff", DueDate: "2024-04-01", Prio: model.PrioLow, Category: model.CategoryUserStory, Assigned: []int64{9}},
	}
}
