package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"taskboard/internal/contact/repository"
	"taskboard/internal/model"
	outbox "taskboard/internal/sync"
)

// ApplySynced updates the list once a queued contact operation has been
// replayed. A replayed delete also runs the task cascade.
func (uc *implUseCase) ApplySynced(ctx context.Context, op outbox.Op, resp json.RawMessage) error {
	uc.opMu.Lock()
	defer uc.opMu.Unlock()

	switch op.Kind {
	case outbox.KindCreate:
		var c model.Contact
		if err := json.Unmarshal(resp, &c); err != nil {
			return fmt.Errorf("failed to decode created contact: %w", err)
		}
		if c.ID == 0 {
			return fmt.Errorf("created contact has no id")
		}
		if c.Type == "" {
			c.Type = model.ContactTypeContact
		}

		uc.mu.Lock()
		uc.upsertLocked(c)
		uc.mu.Unlock()

	case outbox.KindPatch, outbox.KindUpdate:
		var c model.Contact
		if len(resp) > 0 {
			if err := json.Unmarshal(resp, &c); err != nil {
				return fmt.Errorf("failed to decode patched contact: %w", err)
			}
		}

		uc.mu.Lock()
		defer uc.mu.Unlock()
		i := uc.indexLocked(op.RecordID)
		if i < 0 {
			return nil
		}
		existing := uc.contacts[i]
		if c.ID == 0 {
			var opt repository.PatchContactOptions
			if err := json.Unmarshal(op.Payload, &opt); err != nil {
				return fmt.Errorf("failed to decode patch payload: %w", err)
			}
			c = applyPatch(existing, opt)
		}
		if c.Type == "" {
			c.Type = existing.Type
			c.User = existing.User
		}
		uc.upsertLocked(c)

	case outbox.KindDelete:
		uc.mu.Lock()
		uc.removeLocked(op.RecordID)
		uc.mu.Unlock()

		if _, err := uc.cascade(ctx, model.Scope{}, op.RecordID); err != nil {
			return err
		}

	default:
		return fmt.Errorf("%w: %q", outbox.ErrUnknownKind, op.Kind)
	}

	uc.l.Infof(ctx, "uc.ApplySynced: applied %s for contact %d", op.Kind, op.RecordID)
	return nil
}
