package usecase

import (
	"context"

	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/internal/task/repository"
	outbox "taskboard/internal/sync"
	pkgRemote "taskboard/pkg/remote"
)

// Update applies a partial update. An input without fields returns the task unchanged.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	opt, err := uc.validateUpdate(input)
	if err != nil {
		return model.Task{}, err
	}

	uc.opMu.Lock()
	defer uc.opMu.Unlock()

	existing, ok := uc.find(input.ID)
	if !ok {
		return model.Task{}, task.ErrTaskNotFound
	}
	if opt.IsEmpty() {
		return existing, nil
	}

	updated, err := uc.patch(ctx, "update", existing, opt)
	if err != nil {
		return model.Task{}, err
	}
	uc.l.Infof(ctx, "uc.Update: user=%s updated task id=%d", sc.UserID, updated.ID)
	return updated, nil
}

// Delete removes the task remotely, then from the store. A task that is
// already gone remotely is dropped locally as well.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	uc.opMu.Lock()
	defer uc.opMu.Unlock()

	if _, ok := uc.find(id); !ok {
		return task.ErrTaskNotFound
	}
	if err := uc.queueBehind(ctx, "Delete", outbox.KindDelete, id, nil); err != nil {
		return err
	}

	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		if !pkgRemote.IsNotFound(err) {
			uc.l.Errorf(ctx, "uc.Delete repo.DeleteTask: %v", err)
			return uc.remoteErr(ctx, "Delete", outbox.KindDelete, id, nil, err)
		}
		uc.l.Warnf(ctx, "uc.Delete: task %d already gone remotely", id)
	}

	uc.mu.Lock()
	uc.removeLocked(id)
	uc.mu.Unlock()

	uc.count("delete")
	uc.l.Infof(ctx, "uc.Delete: user=%s deleted task id=%d", sc.UserID, id)
	return nil
}

// MoveBucket changes the task's column with a single-field patch.
func (uc *implUseCase) MoveBucket(ctx context.Context, sc model.Scope, id int64, bucket model.Bucket) (model.Task, error) {
	if !bucket.IsValid() {
		return model.Task{}, task.ErrInvalidBucket
	}

	uc.opMu.Lock()
	defer uc.opMu.Unlock()

	existing, ok := uc.find(id)
	if !ok {
		return model.Task{}, task.ErrTaskNotFound
	}
	// The stored bucket is stale while a move waits for replay.
	if existing.Bucket == bucket && !uc.hasPending(id) {
		return existing, nil
	}

	moved, err := uc.patch(ctx, "move", existing, repository.PatchTaskOptions{Bucket: &bucket})
	if err != nil {
		return model.Task{}, err
	}
	uc.l.Infof(ctx, "uc.MoveBucket: user=%s moved task id=%d %s -> %s", sc.UserID, id, existing.Bucket, bucket)
	return moved, nil
}
