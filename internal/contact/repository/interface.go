package repository

import (
	"context"

	"taskboard/internal/model"
)

// Repository is the remote storage of contacts.
type Repository interface {
	// ListContacts returns contacts together with registered users.
	ListContacts(ctx context.Context) ([]model.Contact, error)
	CreateContact(ctx context.Context, opt CreateContactOptions) (model.Contact, error)
	PatchContact(ctx context.Context, id int64, opt PatchContactOptions) (model.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
	// PatchProfile updates the profile record behind a user-type contact.
	PatchProfile(ctx context.Context, userID int64, opt PatchContactOptions) error
}
