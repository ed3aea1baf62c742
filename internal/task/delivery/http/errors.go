package http

import (
	"errors"
	"net/http"

	"taskboard/internal/task"
	pkgErrors "taskboard/pkg/errors"
	pkgRemote "taskboard/pkg/remote"
)

// fieldErrors names the form field each validation error belongs to.
var fieldErrors = map[error]string{
	task.ErrEmptyTitle:      "title",
	task.ErrEmptyDueDate:    "duedate",
	task.ErrInvalidDueDate:  "duedate",
	task.ErrDueDateInPast:   "duedate",
	task.ErrEmptyCategory:   "category",
	task.ErrInvalidCategory: "category",
	task.ErrInvalidPrio:     "prio",
	task.ErrInvalidBucket:   "bucket",
	task.ErrEmptySubtask:    "subtitle",
}

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	for target, field := range fieldErrors {
		if errors.Is(err, target) {
			return pkgErrors.NewValidationError(target.Error(), map[string][]string{field: {target.Error()}})
		}
	}

	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, task.ErrTaskNotFound.Error())
	case errors.Is(err, task.ErrSubtaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, task.ErrSubtaskNotFound.Error())
	case errors.Is(err, task.ErrSyncFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "could not save to remote storage, the change was queued for retry")
	case errors.Is(err, task.ErrRemoteRejected):
		if apiErr, ok := pkgRemote.AsAPIError(err); ok && len(apiErr.Fields) > 0 {
			return pkgErrors.NewValidationError("remote storage rejected the change", apiErr.Fields)
		}
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "remote storage rejected the change")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
