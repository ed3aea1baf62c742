package usecase

import (
	"context"
	"fmt"
	"strings"

	"taskboard/internal/model"
	"taskboard/internal/task"
	outbox "taskboard/internal/sync"
	"taskboard/pkg/gcalendar"
)

// Create validates input, creates the task remotely, then appends the server
// record to the store.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	opt, err := uc.validateCreate(input)
	if err != nil {
		return model.Task{}, err
	}

	uc.opMu.Lock()
	defer uc.opMu.Unlock()

	created, err := uc.repo.CreateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create repo.CreateTask: %v", err)
		return model.Task{}, uc.remoteErr(ctx, "Create", outbox.KindCreate, 0, opt, err)
	}
	created = created.Normalized()

	uc.mu.Lock()
	uc.tasks = append(uc.tasks, created.Clone())
	uc.mu.Unlock()

	uc.count("create")
	uc.l.Infof(ctx, "uc.Create: user=%s created task id=%d bucket=%s", sc.UserID, created.ID, created.Bucket)

	uc.tryCreateCalendarEvent(ctx, created)
	return created.Clone(), nil
}

// tryCreateCalendarEvent mirrors the due date as an all-day event.
// Failures are logged only.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) {
	if uc.calendar == nil {
		return
	}

	due, err := uc.dateMath.ParseDate(t.DueDate)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create dateMath.ParseDate (non-fatal): %v", err)
		return
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     fmt.Sprintf("Due: %s", t.Title),
		Description: strings.TrimSpace(fmt.Sprintf("%s\n\n%s, %s", t.Description, t.Category, t.Prio)),
		StartTime:   due,
		EndTime:     due.AddDate(0, 0, 1),
		Timezone:    uc.dateMath.Location().String(),
		AllDay:      true,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create calendar.CreateEvent (non-fatal) for task %d: %v", t.ID, err)
		return
	}

	uc.l.Infof(ctx, "uc.Create: due date mirrored to calendar event %s", event.ID)
}
