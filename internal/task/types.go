package task

import "taskboard/internal/model"

// CreateInput is the input for creating a task.
type CreateInput struct {
	Title       string
	Description string
	DueDate     string // YYYY-MM-DD
	Prio        model.Prio
	Category    model.Category
	Bucket      model.Bucket // defaults to to-do
	Assigned    []int64
	Subtasks    []string
}

// UpdateInput is a partial update. Nil fields stay unchanged.
type UpdateInput struct {
	ID          int64
	Title       *string
	Description *string
	DueDate     *string
	Prio        *model.Prio
	Category    *model.Category
	Assigned    *[]int64
	Subtasks    *[]model.Subtask
}

// SubtaskInput addresses one subtask by position.
type SubtaskInput struct {
	TaskID int64
	Index  int
	Title  string
}
