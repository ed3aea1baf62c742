package remote

import (
	"context"

	"taskboard/internal/contact/repository"
	"taskboard/internal/model"
	pkgRemote "taskboard/pkg/remote"
)

// ListContacts reads the combined list so the own user card is included.
func (r *implRepository) ListContacts(ctx context.Context) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.client.Read(ctx, pkgRemote.CollectionCombined, &contacts); err != nil {
		r.l.Errorf(ctx, "contact repository: failed to list contacts: %v", err)
		return nil, err
	}
	for i := range contacts {
		if contacts[i].Type == "" {
			contacts[i].Type = model.ContactTypeContact
		}
	}
	return contacts, nil
}

func (r *implRepository) CreateContact(ctx context.Context, opt repository.CreateContactOptions) (model.Contact, error) {
	var c model.Contact
	if err := r.client.Create(ctx, pkgRemote.CollectionContacts, opt, &c); err != nil {
		r.l.Errorf(ctx, "contact repository: failed to create contact: %v", err)
		return model.Contact{}, err
	}
	return c, nil
}

func (r *implRepository) PatchContact(ctx context.Context, id int64, opt repository.PatchContactOptions) (model.Contact, error) {
	var c model.Contact
	if err := r.client.Patch(ctx, pkgRemote.CollectionContacts, id, opt, &c); err != nil {
		r.l.Errorf(ctx, "contact repository: failed to patch contact %d: %v", id, err)
		return model.Contact{}, err
	}
	return c, nil
}

func (r *implRepository) DeleteContact(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, pkgRemote.CollectionContacts, id); err != nil {
		r.l.Errorf(ctx, "contact repository: failed to delete contact %d: %v", id, err)
		return err
	}
	return nil
}

func (r *implRepository) PatchProfile(ctx context.Context, userID int64, opt repository.PatchContactOptions) error {
	if err := r.client.Patch(ctx, pkgRemote.CollectionProfile, userID, opt, nil); err != nil {
		r.l.Errorf(ctx, "contact repository: failed to patch profile %d: %v", userID, err)
		return err
	}
	return nil
}
