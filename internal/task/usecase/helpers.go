package usecase

import (
	"context"
	"errors"
	"fmt"

	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/internal/task/repository"
	outbox "taskboard/internal/sync"
	pkgRemote "taskboard/pkg/remote"
)

// remoteErr classifies a failed remote call. Retryable failures are queued in
// the outbox and reported as ErrSyncFailed.
func (uc *implUseCase) remoteErr(ctx context.Context, op string, kind outbox.Kind, id int64, payload any, err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return err
	case pkgRemote.IsNotFound(err):
		return fmt.Errorf("%w: %w", task.ErrTaskNotFound, err)
	case !pkgRemote.IsRetryable(err):
		return fmt.Errorf("%w: %w", task.ErrRemoteRejected, err)
	}
	return uc.record(ctx, op, kind, id, payload, err)
}

// queueBehind records the mutation without calling the remote when an older
// op for the same task still waits for replay. It returns nil when nothing
// is pending.
func (uc *implUseCase) queueBehind(ctx context.Context, op string, kind outbox.Kind, id int64, payload any) error {
	if !uc.hasPending(id) {
		return nil
	}
	uc.l.Warnf(ctx, "uc.%s: task %d has a pending change, queueing behind it", op, id)
	return uc.record(ctx, op, kind, id, payload, outbox.ErrQueuedBehind)
}

func (uc *implUseCase) hasPending(id int64) bool {
	return uc.outbox != nil && uc.outbox.HasPending(pkgRemote.CollectionTasks, id)
}

func (uc *implUseCase) record(ctx context.Context, op string, kind outbox.Kind, id int64, payload any, err error) error {
	if uc.outbox != nil {
		if _, rErr := uc.outbox.Record(ctx, outbox.RecordInput{
			Collection: pkgRemote.CollectionTasks,
			Kind:       kind,
			RecordID:   id,
			Payload:    payload,
			Err:        err,
		}); rErr != nil {
			uc.l.Errorf(ctx, "uc.%s outbox.Record: %v", op, rErr)
		}
	}
	return fmt.Errorf("%w: %w", task.ErrSyncFailed, err)
}

// patch sends opt to the remote and, on success, replaces the in-memory
// record. Callers hold opMu.
func (uc *implUseCase) patch(ctx context.Context, op string, existing model.Task, opt repository.PatchTaskOptions) (model.Task, error) {
	if err := uc.queueBehind(ctx, op, outbox.KindPatch, existing.ID, opt); err != nil {
		return model.Task{}, err
	}

	updated, err := uc.repo.PatchTask(ctx, existing.ID, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s repo.PatchTask: %v", op, err)
		return model.Task{}, uc.remoteErr(ctx, op, outbox.KindPatch, existing.ID, opt, err)
	}

	// Servers that answer PATCH with an empty body get the local merge.
	if updated.ID == 0 {
		updated = applyPatch(existing, opt)
	}
	updated = updated.Normalized()

	uc.mu.Lock()
	uc.replaceLocked(updated)
	uc.mu.Unlock()

	uc.count(op)
	return updated.Clone(), nil
}

// find returns a copy of the task with id.
func (uc *implUseCase) find(id int64) (model.Task, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if i := uc.indexLocked(id); i >= 0 {
		return uc.tasks[i].Clone(), true
	}
	return model.Task{}, false
}

func (uc *implUseCase) indexLocked(id int64) int {
	for i := range uc.tasks {
		if uc.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (uc *implUseCase) replaceLocked(t model.Task) {
	if i := uc.indexLocked(t.ID); i >= 0 {
		uc.tasks[i] = t.Clone()
	}
}

func (uc *implUseCase) removeLocked(id int64) {
	kept := uc.tasks[:0]
	for _, t := range uc.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	uc.tasks = kept
}

func (uc *implUseCase) count(op string) {
	if uc.counter != nil {
		uc.counter.Inc("task_" + op)
	}
}

func applyPatch(t model.Task, opt repository.PatchTaskOptions) model.Task {
	out := t.Clone()
	if opt.Bucket != nil {
		out.Bucket = *opt.Bucket
	}
	if opt.Title != nil {
		out.Title = *opt.Title
	}
	if opt.Description != nil {
		out.Description = *opt.Description
	}
	if opt.DueDate != nil {
		out.DueDate = *opt.DueDate
	}
	if opt.Prio != nil {
		out.Prio = *opt.Prio
	}
	if opt.Category != nil {
		out.Category = *opt.Category
	}
	if opt.Assigned != nil {
		out.Assigned = append([]int64{}, *opt.Assigned...)
	}
	if opt.Subtasks != nil {
		out.Subtasks = append([]model.Subtask{}, *opt.Subtasks...)
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
