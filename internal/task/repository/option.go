package repository

import "taskboard/internal/model"

// CreateTaskOptions is the body of a task create request.
type CreateTaskOptions struct {
	Bucket      model.Bucket    `json:"bucket"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	DueDate     string          `json:"duedate"`
	Prio        model.Prio      `json:"prio"`
	Category    model.Category  `json:"category"`
	Assigned    []int64         `json:"assigned"`
	Subtasks    []model.Subtask `json:"subtasks"`
}

// PatchTaskOptions holds the changed fields only. Nil fields are omitted.
type PatchTaskOptions struct {
	Bucket      *model.Bucket    `json:"bucket,omitempty"`
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	DueDate     *string          `json:"duedate,omitempty"`
	Prio        *model.Prio      `json:"prio,omitempty"`
	Category    *model.Category  `json:"category,omitempty"`
	Assigned    *[]int64         `json:"assigned,omitempty"`
	Subtasks    *[]model.Subtask `json:"subtasks,omitempty"`
}

// IsEmpty reports whether no field is set.
func (o PatchTaskOptions) IsEmpty() bool {
	return o.Bucket == nil && o.Title == nil && o.Description == nil && o.DueDate == nil &&
		o.Prio == nil && o.Category == nil && o.Assigned == nil && o.Subtasks == nil
}
