package http

import (
	"context"
	"errors"
	"net/http"

	"taskboard/internal/sync"
	pkgErrors "taskboard/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, sync.ErrRetryInProgress):
		return pkgErrors.NewHTTPError(http.StatusConflict, sync.ErrRetryInProgress.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "retry interrupted")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
