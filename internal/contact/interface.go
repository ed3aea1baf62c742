package contact

import (
	"context"

	"taskboard/internal/model"
	"taskboard/internal/sync"
)

// UseCase is the in-memory contact list mirrored to the remote API. The list
// is kept sorted by username.
type UseCase interface {
	Load(ctx context.Context) error
	// Reset drops every contact from memory.
	Reset(ctx context.Context)

	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Contact, error)
	Detail(ctx context.Context, id int64) (model.Contact, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Contact, error)
	// Delete removes the contact and unassigns it from every task.
	Delete(ctx context.Context, sc model.Scope, id int64) (DeleteResult, error)
	List(ctx context.Context) []model.Contact

	sync.Applier
}

// TaskUnassigner removes a contact from task assignee lists. task.UseCase
// implements it.
type TaskUnassigner interface {
	UnassignContact(ctx context.Context, sc model.Scope, contactID int64) (int, error)
}

// MutationCounter counts successful store mutations by operation name.
type MutationCounter interface {
	Inc(op string)
}
