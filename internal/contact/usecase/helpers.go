package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"taskboard/internal/contact"
	"taskboard/internal/contact/repository"
	"taskboard/internal/model"
	outbox "taskboard/internal/sync"
	pkgRemote "taskboard/pkg/remote"
)

// remoteErr classifies a failed remote call. A 400 with field messages
// becomes a ValidationError; retryable failures are queued in the outbox.
func (uc *implUseCase) remoteErr(ctx context.Context, op, collection string, kind outbox.Kind, id int64, payload any, err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return err
	case pkgRemote.IsNotFound(err):
		return fmt.Errorf("%w: %w", contact.ErrContactNotFound, err)
	case !pkgRemote.IsRetryable(err):
		if apiErr, ok := pkgRemote.AsAPIError(err); ok && apiErr.StatusCode == http.StatusBadRequest && len(apiErr.Fields) > 0 {
			return &contact.ValidationError{Fields: apiErr.Fields, Err: err}
		}
		return fmt.Errorf("%w: %w", contact.ErrRemoteRejected, err)
	}

	return uc.record(ctx, op, collection, kind, id, payload, err)
}

// pending reports whether an op for c, or for the profile behind a user
// card, still waits for replay.
func (uc *implUseCase) pending(c model.Contact) bool {
	if uc.outbox == nil {
		return false
	}
	if uc.outbox.HasPending(pkgRemote.CollectionContacts, c.ID) {
		return true
	}
	return c.Type == model.ContactTypeUser && uc.outbox.HasPending(pkgRemote.CollectionProfile, c.User)
}

func (uc *implUseCase) record(ctx context.Context, op, collection string, kind outbox.Kind, id int64, payload any, err error) error {
	if uc.outbox != nil {
		if _, rErr := uc.outbox.Record(ctx, outbox.RecordInput{
			Collection: collection,
			Kind:       kind,
			RecordID:   id,
			Payload:    payload,
			Err:        err,
		}); rErr != nil {
			uc.l.Errorf(ctx, "uc.%s outbox.Record: %v", op, rErr)
		}
	}
	return fmt.Errorf("%w: %w", contact.ErrSyncFailed, err)
}

func (uc *implUseCase) find(id int64) (model.Contact, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if i := uc.indexLocked(id); i >= 0 {
		return uc.contacts[i], true
	}
	return model.Contact{}, false
}

func (uc *implUseCase) indexLocked(id int64) int {
	for i := range uc.contacts {
		if uc.contacts[i].ID == id {
			return i
		}
	}
	return -1
}

// upsertLocked inserts or replaces c and restores the sort order.
func (uc *implUseCase) upsertLocked(c model.Contact) {
	if i := uc.indexLocked(c.ID); i >= 0 {
		uc.contacts[i] = c
	} else {
		uc.contacts = append(uc.contacts, c)
	}
	uc.sortLocked()
}

func (uc *implUseCase) removeLocked(id int64) {
	kept := uc.contacts[:0]
	for _, c := range uc.contacts {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	uc.contacts = kept
}

// sortLocked orders by username using the locale collator. Equal names keep
// ID order so the result never depends on insertion history.
func (uc *implUseCase) sortLocked() {
	sort.SliceStable(uc.contacts, func(i, j int) bool {
		a, b := uc.contacts[i], uc.contacts[j]
		if c := uc.collator.CompareString(a.Username, b.Username); c != 0 {
			return c < 0
		}
		return a.ID < b.ID
	})
}

func (uc *implUseCase) count(op string) {
	if uc.counter != nil {
		uc.counter.Inc("contact_" + op)
	}
}

func applyPatch(c model.Contact, opt repository.PatchContactOptions) model.Contact {
	if opt.Username != nil {
		c.Username = *opt.Username
	}
	if opt.Email != nil {
		c.Email = *opt.Email
	}
	if opt.Phone != nil {
		c.Phone = *opt.Phone
	}
	if opt.BgColor != nil {
		c.BgColor = *opt.BgColor
	}
	return c
}
