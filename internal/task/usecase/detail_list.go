package usecase

import (
	"context"

	"taskboard/internal/model"
	"taskboard/internal/task"
)

// Load replaces the in-memory list with the remote collection.
func (uc *implUseCase) Load(ctx context.Context) error {
	uc.opMu.Lock()
	defer uc.opMu.Unlock()

	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Load repo.ListTasks: %v", err)
		return err
	}

	loaded := make([]model.Task, len(tasks))
	for i, t := range tasks {
		loaded[i] = t.Normalized().Clone()
	}

	uc.mu.Lock()
	uc.tasks = loaded
	uc.mu.Unlock()

	uc.l.Debugf(ctx, "uc.Load: loaded %d tasks", len(loaded))
	return nil
}

// Reset empties the store without touching the remote.
func (uc *implUseCase) Reset(ctx context.Context) {
	uc.opMu.Lock()
	defer uc.opMu.Unlock()

	uc.mu.Lock()
	uc.tasks = []model.Task{}
	uc.mu.Unlock()
}

// Detail returns the first task with id.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (model.Task, error) {
	t, ok := uc.find(id)
	if !ok {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

func (uc *implUseCase) List(ctx context.Context) []model.Task {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]model.Task, len(uc.tasks))
	for i, t := range uc.tasks {
		out[i] = t.Clone()
	}
	return out
}

func (uc *implUseCase) ListByBucket(ctx context.Context, bucket model.Bucket) []model.Task {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]model.Task, 0)
	for _, t := range uc.tasks {
		if t.Bucket == bucket {
			out = append(out, t.Clone())
		}
	}
	return out
}
