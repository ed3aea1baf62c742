package task

import (
	"context"

	"taskboard/internal/model"
	"taskboard/internal/sync"
	"taskboard/pkg/gcalendar"
)

// UseCase is the in-memory task store mirrored to the remote API.
type UseCase interface {
	// Load replaces the in-memory list with the remote tasks collection.
	Load(ctx context.Context) error
	// Reset drops every task from memory, e.g. when the session ends.
	Reset(ctx context.Context)

	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)
	Detail(ctx context.Context, id int64) (model.Task, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)
	Delete(ctx context.Context, sc model.Scope, id int64) error
	MoveBucket(ctx context.Context, sc model.Scope, id int64, bucket model.Bucket) (model.Task, error)

	// List returns a snapshot in insertion order.
	List(ctx context.Context) []model.Task
	// ListByBucket returns the tasks in bucket, keeping relative order.
	ListByBucket(ctx context.Context, bucket model.Bucket) []model.Task

	AddSubtask(ctx context.Context, sc model.Scope, input SubtaskInput) (model.Task, error)
	// UpdateSubtask renames a subtask and clears its done flag.
	UpdateSubtask(ctx context.Context, sc model.Scope, input SubtaskInput) (model.Task, error)
	ToggleSubtask(ctx context.Context, sc model.Scope, input SubtaskInput) (model.Task, error)
	DeleteSubtask(ctx context.Context, sc model.Scope, input SubtaskInput) (model.Task, error)

	// UnassignContact drops contactID from every task that references it and
	// returns how many tasks were updated.
	UnassignContact(ctx context.Context, sc model.Scope, contactID int64) (int, error)

	sync.Applier
}

// Calendar mirrors due dates to a calendar. *gcalendar.Client implements it.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// MutationCounter counts successful store mutations by operation name.
type MutationCounter interface {
	Inc(op string)
}
