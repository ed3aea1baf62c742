package usecase

import (
	"strings"

	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/internal/task/repository"
)

func (uc *implUseCase) validateCreate(input task.CreateInput) (repository.CreateTaskOptions, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return repository.CreateTaskOptions{}, task.ErrEmptyTitle
	}
	due := strings.TrimSpace(input.DueDate)
	if due == "" {
		return repository.CreateTaskOptions{}, task.ErrEmptyDueDate
	}
	if input.Category == "" {
		return repository.CreateTaskOptions{}, task.ErrEmptyCategory
	}

	upcoming, err := uc.dateMath.IsOnOrAfterToday(due, uc.now())
	if err != nil {
		return repository.CreateTaskOptions{}, task.ErrInvalidDueDate
	}
	if !upcoming {
		return repository.CreateTaskOptions{}, task.ErrDueDateInPast
	}

	prio := input.Prio
	if prio == "" {
		prio = model.PrioMedium
	}
	if !prio.IsValid() {
		return repository.CreateTaskOptions{}, task.ErrInvalidPrio
	}
	if !input.Category.IsValid() {
		return repository.CreateTaskOptions{}, task.ErrInvalidCategory
	}

	bucket := input.Bucket
	if bucket == "" {
		bucket = model.BucketToDo
	}
	if !bucket.IsValid() {
		return repository.CreateTaskOptions{}, task.ErrInvalidBucket
	}

	subtasks := make([]model.Subtask, 0, len(input.Subtasks))
	for _, s := range input.Subtasks {
		if s = strings.TrimSpace(s); s != "" {
			subtasks = append(subtasks, model.Subtask{Title: s})
		}
	}

	return repository.CreateTaskOptions{
		Bucket:      bucket,
		Title:       title,
		Description: input.Description,
		DueDate:     due,
		Prio:        prio,
		Category:    input.Category,
		Assigned:    dedupeIDs(input.Assigned),
		Subtasks:    subtasks,
	}, nil
}

// validateUpdate checks the set fields. Past due dates are accepted so
// overdue tasks stay editable.
func (uc *implUseCase) validateUpdate(input task.UpdateInput) (repository.PatchTaskOptions, error) {
	var opt repository.PatchTaskOptions

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return opt, task.ErrEmptyTitle
		}
		opt.Title = &title
	}
	if input.Description != nil {
		opt.Description = ptr(*input.Description)
	}
	if input.DueDate != nil {
		due := strings.TrimSpace(*input.DueDate)
		if due == "" {
			return opt, task.ErrEmptyDueDate
		}
		if _, err := uc.dateMath.ParseDate(due); err != nil {
			return opt, task.ErrInvalidDueDate
		}
		opt.DueDate = &due
	}
	if input.Prio != nil {
		prio := *input.Prio
		if prio == "" {
			prio = model.PrioMedium
		}
		if !prio.IsValid() {
			return opt, task.ErrInvalidPrio
		}
		opt.Prio = &prio
	}
	if input.Category != nil {
		if *input.Category == "" {
			return opt, task.ErrEmptyCategory
		}
		if !input.Category.IsValid() {
			return opt, task.ErrInvalidCategory
		}
		opt.Category = ptr(*input.Category)
	}
	if input.Assigned != nil {
		opt.Assigned = ptr(dedupeIDs(*input.Assigned))
	}
	if input.Subtasks != nil {
		subtasks := make([]model.Subtask, 0, len(*input.Subtasks))
		for _, s := range *input.Subtasks {
			if s.Title = strings.TrimSpace(s.Title); s.Title != "" {
				subtasks = append(subtasks, s)
			}
		}
		opt.Subtasks = &subtasks
	}

	return opt, nil
}

// dedupeIDs keeps the first occurrence of each positive ID.
func dedupeIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
