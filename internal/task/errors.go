package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrEmptyTitle      = errors.New("title is required")
	ErrEmptyDueDate    = errors.New("due date is required")
	ErrEmptyCategory   = errors.New("category is required")
	ErrInvalidDueDate  = errors.New("due date must be YYYY-MM-DD")
	ErrDueDateInPast   = errors.New("due date must be today or later")
	ErrInvalidPrio     = errors.New("invalid priority")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidBucket   = errors.New("invalid bucket")
	ErrEmptySubtask    = errors.New("subtask title is required")
	ErrSubtaskNotFound = errors.New("subtask not found")

	// ErrSyncFailed means the remote call failed and the operation was queued for retry.
	ErrSyncFailed = errors.New("remote sync failed")
	// ErrRemoteRejected means the remote API refused the change. It is not retried.
	ErrRemoteRejected = errors.New("remote rejected the change")
)
