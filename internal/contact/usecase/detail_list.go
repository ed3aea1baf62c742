package usecase

import (
	"context"

	"taskboard/internal/contact"
	"taskboard/internal/model"
)

// Load replaces the in-memory list with the remote one.
func (uc *implUseCase) Load(ctx context.Context) error {
	uc.opMu.Lock()
	defer uc.opMu.Unlock()

	contacts, err := uc.repo.ListContacts(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Load repo.ListContacts: %v", err)
		return err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.contacts = append([]model.Contact{}, contacts...)
	uc.sortLocked()
	return nil
}

// Reset empties the list without touching the remote.
func (uc *implUseCase) Reset(ctx context.Context) {
	uc.opMu.Lock()
	defer uc.opMu.Unlock()

	uc.mu.Lock()
	uc.contacts = []model.Contact{}
	uc.mu.Unlock()
}

func (uc *implUseCase) Detail(ctx context.Context, id int64) (model.Contact, error) {
	c, ok := uc.find(id)
	if !ok {
		return model.Contact{}, contact.ErrContactNotFound
	}
	return c, nil
}

// List returns the contacts sorted by name.
func (uc *implUseCase) List(ctx context.Context) []model.Contact {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return append([]model.Contact{}, uc.contacts...)
}
