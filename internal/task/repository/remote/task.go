package remote

import (
	"context"

	"taskboard/internal/model"
	"taskboard/internal/task/repository"
	pkgRemote "taskboard/pkg/remote"
)

func (r *implRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.client.Read(ctx, pkgRemote.CollectionTasks, &tasks); err != nil {
		r.l.Errorf(ctx, "task repository: failed to list tasks: %v", err)
		return nil, err
	}
	for i := range tasks {
		tasks[i] = tasks[i].Normalized()
	}
	return tasks, nil
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	var t model.Task
	if err := r.client.Create(ctx, pkgRemote.CollectionTasks, opt, &t); err != nil {
		r.l.Errorf(ctx, "task repository: failed to create task: %v", err)
		return model.Task{}, err
	}
	return t.Normalized(), nil
}

func (r *implRepository) PatchTask(ctx context.Context, id int64, opt repository.PatchTaskOptions) (model.Task, error) {
	var t model.Task
	if err := r.client.Patch(ctx, pkgRemote.CollectionTasks, id, opt, &t); err != nil {
		r.l.Errorf(ctx, "task repository: failed to patch task %d: %v", id, err)
		return model.Task{}, err
	}
	return t.Normalized(), nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, pkgRemote.CollectionTasks, id); err != nil {
		r.l.Errorf(ctx, "task repository: failed to delete task %d: %v", id, err)
		return err
	}
	return nil
}
