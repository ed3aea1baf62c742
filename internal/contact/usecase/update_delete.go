package usecase

import (
	"context"
	"fmt"

	"taskboard/internal/contact"
	"taskboard/internal/contact/repository"
	"taskboard/internal/model"
	outbox "taskboard/internal/sync"
	pkgRemote "taskboard/pkg/remote"
)

// Update patches a contact. The card of a registered user also patches the
// profile record behind it, before the contact itself.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input contact.UpdateInput) (model.Contact, error) {
	in, err := validateUpdate(input)
	if err != nil {
		return model.Contact{}, err
	}

	uc.opMu.Lock()
	defer uc.opMu.Unlock()

	existing, ok := uc.find(in.ID)
	if !ok {
		return model.Contact{}, contact.ErrContactNotFound
	}

	opt := repository.PatchContactOptions{
		Username: in.Username,
		Email:    in.Email,
		Phone:    in.Phone,
		BgColor:  in.BgColor,
	}
	if opt.IsEmpty() {
		return existing, nil
	}

	if uc.pending(existing) {
		uc.l.Warnf(ctx, "uc.Update: contact %d has a pending change, queueing behind it", existing.ID)
		if existing.Type == model.ContactTypeUser && existing.User != 0 {
			_ = uc.record(ctx, "Update", pkgRemote.CollectionProfile, outbox.KindPatch, existing.User, opt, outbox.ErrQueuedBehind)
		}
		return model.Contact{}, uc.record(ctx, "Update", pkgRemote.CollectionContacts, outbox.KindPatch, existing.ID, opt, outbox.ErrQueuedBehind)
	}

	if existing.Type == model.ContactTypeUser && existing.User != 0 {
		if err := uc.repo.PatchProfile(ctx, existing.User, opt); err != nil {
			uc.l.Errorf(ctx, "uc.Update repo.PatchProfile: %v", err)
			return model.Contact{}, uc.remoteErr(ctx, "Update", pkgRemote.CollectionProfile, outbox.KindPatch, existing.User, opt, err)
		}
	}

	updated, err := uc.repo.PatchContact(ctx, existing.ID, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update repo.PatchContact: %v", err)
		return model.Contact{}, uc.remoteErr(ctx, "Update", pkgRemote.CollectionContacts, outbox.KindPatch, existing.ID, opt, err)
	}
	if updated.ID == 0 {
		updated = applyPatch(existing, opt)
	}
	if updated.Type == "" {
		updated.Type = existing.Type
		updated.User = existing.User
	}

	uc.mu.Lock()
	uc.upsertLocked(updated)
	uc.mu.Unlock()

	uc.count("update")
	uc.l.Infof(ctx, "uc.Update: user=%s updated contact %d", sc.UserID, updated.ID)
	return updated, nil
}

// Delete removes the contact remotely, then locally, then from every task
// assignee list. A contact already gone remotely is still dropped locally.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) (contact.DeleteResult, error) {
	uc.opMu.Lock()
	defer uc.opMu.Unlock()

	existing, ok := uc.find(id)
	if !ok {
		return contact.DeleteResult{}, contact.ErrContactNotFound
	}
	if uc.pending(existing) {
		uc.l.Warnf(ctx, "uc.Delete: contact %d has a pending change, queueing behind it", id)
		return contact.DeleteResult{}, uc.record(ctx, "Delete", pkgRemote.CollectionContacts, outbox.KindDelete, id, nil, outbox.ErrQueuedBehind)
	}

	if err := uc.repo.DeleteContact(ctx, id); err != nil && !pkgRemote.IsNotFound(err) {
		uc.l.Errorf(ctx, "uc.Delete repo.DeleteContact: %v", err)
		return contact.DeleteResult{}, uc.remoteErr(ctx, "Delete", pkgRemote.CollectionContacts, outbox.KindDelete, id, nil, err)
	}

	uc.mu.Lock()
	uc.removeLocked(id)
	uc.mu.Unlock()
	uc.count("delete")

	return uc.cascade(ctx, sc, id)
}

func (uc *implUseCase) cascade(ctx context.Context, sc model.Scope, id int64) (contact.DeleteResult, error) {
	if uc.tasks == nil {
		return contact.DeleteResult{}, nil
	}

	touched, err := uc.tasks.UnassignContact(ctx, sc, id)
	res := contact.DeleteResult{UnassignedTasks: touched}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete tasks.UnassignContact: %v", err)
		return res, fmt.Errorf("%w: %w", contact.ErrCascadeIncomplete, err)
	}

	uc.l.Infof(ctx, "uc.Delete: user=%s deleted contact %d, unassigned from %d tasks", sc.UserID, id, touched)
	return res, nil
}
