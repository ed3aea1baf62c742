package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"taskboard/internal/model"
	"taskboard/internal/task/repository"
	outbox "taskboard/internal/sync"
)

// ApplySynced updates the store once a queued operation has been replayed.
func (uc *implUseCase) ApplySynced(ctx context.Context, op outbox.Op, resp json.RawMessage) error {
	uc.opMu.Lock()
	defer uc.opMu.Unlock()

	switch op.Kind {
	case outbox.KindCreate:
		var t model.Task
		if err := json.Unmarshal(resp, &t); err != nil {
			return fmt.Errorf("failed to decode created task: %w", err)
		}
		if t.ID == 0 {
			return fmt.Errorf("created task has no id")
		}
		t = t.Normalized()

		uc.mu.Lock()
		if uc.indexLocked(t.ID) < 0 {
			uc.tasks = append(uc.tasks, t)
		}
		uc.mu.Unlock()

	case outbox.KindPatch, outbox.KindUpdate:
		var t model.Task
		if len(resp) > 0 {
			if err := json.Unmarshal(resp, &t); err != nil {
				return fmt.Errorf("failed to decode patched task: %w", err)
			}
		}

		uc.mu.Lock()
		defer uc.mu.Unlock()
		if t.ID == 0 {
			i := uc.indexLocked(op.RecordID)
			if i < 0 {
				return nil
			}
			var opt repository.PatchTaskOptions
			if err := json.Unmarshal(op.Payload, &opt); err != nil {
				return fmt.Errorf("failed to decode patch payload: %w", err)
			}
			t = applyPatch(uc.tasks[i], opt)
		}
		uc.replaceLocked(t.Normalized())

	case outbox.KindDelete:
		uc.mu.Lock()
		uc.removeLocked(op.RecordID)
		uc.mu.Unlock()

	default:
		return fmt.Errorf("%w: %q", outbox.ErrUnknownKind, op.Kind)
	}

	uc.l.Infof(ctx, "uc.ApplySynced: applied %s for task %d", op.Kind, op.RecordID)
	return nil
}
