package repository

import (
	"context"

	"taskboard/internal/model"
)

// Repository is the interface for remote task storage.
type Repository interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	PatchTask(ctx context.Context, id int64, opt PatchTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}
