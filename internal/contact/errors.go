package contact

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrContactNotFound = errors.New("contact not found")
	ErrInvalidUsername = errors.New("name must be 2 to 100 letters")
	ErrInvalidEmail    = errors.New("email address is not valid")
	ErrInvalidPhone    = errors.New("phone number is not valid")
	ErrInvalidBgColor  = errors.New("color must be #RRGGBB")

	// ErrSyncFailed means the remote call failed and the operation was queued for retry.
	ErrSyncFailed = errors.New("remote sync failed")
	// ErrRemoteRejected means the remote API refused the change without field details.
	ErrRemoteRejected = errors.New("remote rejected the change")
	// ErrCascadeIncomplete means the contact was deleted but some tasks still reference it.
	ErrCascadeIncomplete = errors.New("contact deleted but some tasks could not be unassigned")
)

// ValidationError carries one or more messages per form field. It is produced
// by local validation and by remote 400 responses with field details.
type ValidationError struct {
	Fields map[string][]string
	// Err is the remote error when the fields came from the API.
	Err error
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
	}
	return "invalid contact: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Add appends msg to field.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	ok := errors.As(err, &vErr)
	return vErr, ok
}
