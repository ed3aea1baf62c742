package usecase

import (
	"context"
	"errors"

	"taskboard/internal/model"
	"taskboard/internal/task/repository"
)

// UnassignContact scans every task and patches the assignee list of those
// that reference contactID. Failed patches are reported together; the
// returned count covers the successful ones.
func (uc *implUseCase) UnassignContact(ctx context.Context, sc model.Scope, contactID int64) (int, error) {
	uc.opMu.Lock()
	defer uc.opMu.Unlock()

	uc.mu.RLock()
	affected := make([]model.Task, 0)
	for _, t := range uc.tasks {
		if t.IsAssigned(contactID) {
			affected = append(affected, t.Clone())
		}
	}
	uc.mu.RUnlock()

	touched := 0
	var errs []error
	for _, t := range affected {
		kept := make([]int64, 0, len(t.Assigned))
		for _, id := range t.Assigned {
			if id != contactID {
				kept = append(kept, id)
			}
		}

		if _, err := uc.patch(ctx, "unassign", t, repository.PatchTaskOptions{Assigned: &kept}); err != nil {
			errs = append(errs, err)
			continue
		}
		touched++
	}

	uc.l.Infof(ctx, "uc.UnassignContact: user=%s contact=%d touched=%d failed=%d", sc.UserID, contactID, touched, len(errs))
	return touched, errors.Join(errs...)
}
