package http

import (
	"errors"
	"net/http"

	"taskboard/internal/session"
	pkgErrors "taskboard/pkg/errors"
)

// User-facing messages shown by the login and sign-up forms.
const (
	msgInvalidCredentials = "Email or password is not valid"
	msgEmailTaken         = "This email is already taken"
	msgRegistrationFailed = "Registration failed"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, msgInvalidCredentials)
	case errors.Is(err, session.ErrEmailTaken):
		return pkgErrors.NewValidationError(msgEmailTaken, map[string][]string{"email": {msgEmailTaken}})
	case errors.Is(err, session.ErrPasswordMismatch):
		return pkgErrors.NewValidationError(session.ErrPasswordMismatch.Error(),
			map[string][]string{"repeated_password": {session.ErrPasswordMismatch.Error()}})
	case errors.Is(err, session.ErrEmptyCredentials):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, session.ErrEmptyCredentials.Error())
	case errors.Is(err, session.ErrNoGuestToken):
		return pkgErrors.NewHTTPError(http.StatusNotFound, session.ErrNoGuestToken.Error())
	case errors.Is(err, session.ErrAuthUnavailable):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, session.ErrAuthUnavailable.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}

// mapRegisterError answers unexpected sign-up failures with the generic form message.
func (h *handler) mapRegisterError(err error) error {
	mapped := h.mapError(err)
	var httpErr *pkgErrors.HTTPError
	if errors.As(mapped, &httpErr) && httpErr.Code == http.StatusInternalServerError {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msgRegistrationFailed)
	}
	return mapped
}
