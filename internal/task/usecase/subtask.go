package usecase

import (
	"context"
	"strings"

	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/internal/task/repository"
)

func (uc *implUseCase) AddSubtask(ctx context.Context, sc model.Scope, input task.SubtaskInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, task.ErrEmptySubtask
	}
	return uc.editSubtasks(ctx, input.TaskID, func(subs []model.Subtask) ([]model.Subtask, error) {
		return append(subs, model.Subtask{Title: title}), nil
	})
}

// UpdateSubtask renames a subtask. The done flag is cleared on rename.
func (uc *implUseCase) UpdateSubtask(ctx context.Context, sc model.Scope, input task.SubtaskInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, task.ErrEmptySubtask
	}
	return uc.editSubtasks(ctx, input.TaskID, func(subs []model.Subtask) ([]model.Subtask, error) {
		if input.Index < 0 || input.Index >= len(subs) {
			return nil, task.ErrSubtaskNotFound
		}
		subs[input.Index] = model.Subtask{Title: title}
		return subs, nil
	})
}

func (uc *implUseCase) ToggleSubtask(ctx context.Context, sc model.Scope, input task.SubtaskInput) (model.Task, error) {
	return uc.editSubtasks(ctx, input.TaskID, func(subs []model.Subtask) ([]model.Subtask, error) {
		if input.Index < 0 || input.Index >= len(subs) {
			return nil, task.ErrSubtaskNotFound
		}
		subs[input.Index].Done = !subs[input.Index].Done
		return subs, nil
	})
}

func (uc *implUseCase) DeleteSubtask(ctx context.Context, sc model.Scope, input task.SubtaskInput) (model.Task, error) {
	return uc.editSubtasks(ctx, input.TaskID, func(subs []model.Subtask) ([]model.Subtask, error) {
		if input.Index < 0 || input.Index >= len(subs) {
			return nil, task.ErrSubtaskNotFound
		}
		return append(subs[:input.Index], subs[input.Index+1:]...), nil
	})
}

// editSubtasks persists the full subtasks array produced by edit.
func (uc *implUseCase) editSubtasks(ctx context.Context, taskID int64, edit func([]model.Subtask) ([]model.Subtask, error)) (model.Task, error) {
	uc.opMu.Lock()
	defer uc.opMu.Unlock()

	existing, ok := uc.find(taskID)
	if !ok {
		return model.Task{}, task.ErrTaskNotFound
	}

	subs, err := edit(append([]model.Subtask{}, existing.Subtasks...))
	if err != nil {
		return model.Task{}, err
	}

	return uc.patch(ctx, "subtask", existing, repository.PatchTaskOptions{Subtasks: &subs})
}
