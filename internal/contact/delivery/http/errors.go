package http

import (
	"errors"
	"net/http"

	"taskboard/internal/contact"
	pkgErrors "taskboard/pkg/errors"
)

func (h *handler) mapError(err error) error {
	if vErr, ok := contact.AsValidationError(err); ok {
		return pkgErrors.NewValidationError("invalid contact", vErr.Fields)
	}

	switch {
	case errors.Is(err, contact.ErrContactNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, contact.ErrContactNotFound.Error())
	case errors.Is(err, contact.ErrSyncFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "could not save to remote storage, the change was queued for retry")
	case errors.Is(err, contact.ErrCascadeIncomplete):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, contact.ErrCascadeIncomplete.Error())
	case errors.Is(err, contact.ErrRemoteRejected):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "remote storage rejected the change")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
