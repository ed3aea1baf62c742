package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// APIError is returned for every non-2xx response.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
	// Fields holds field-specific messages parsed from a JSON object body,
	// e.g. {"email": ["This email is already taken"]}.
	Fields map[string][]string
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
		}
		return fmt.Sprintf("remote API %s %s error %d: %s", e.Method, e.Path, e.StatusCode, strings.Join(parts, ", "))
	}
	return fmt.Sprintf("remote API %s %s error %d: %s", e.Method, e.Path, e.StatusCode, string(e.Body))
}

// Field returns the first message for the given field, or "".
func (e *APIError) Field(name string) string {
	if msgs := e.Fields[name]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// IsNotFound reports whether err is a 404 from the remote API.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 or 403 from the remote API.
func IsUnauthorized(err error) bool {
	code := StatusCode(err)
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

// IsRetryable reports whether replaying the request could succeed: transport
// failures, 408, 429 and 5xx responses. Context cancellation is not retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	code := StatusCode(err)
	switch {
	case code == 0:
		return true
	case code == http.StatusRequestTimeout, code == http.StatusTooManyRequests:
		return true
	case code >= 500:
		return true
	}
	return false
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// AsAPIError unwraps err into an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// parseFields accepts {"field": ["msg", ...]} and {"field": "msg"} shapes.
func parseFields(body []byte) map[string][]string {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	fields := make(map[string][]string, len(raw))
	for k, v := range raw {
		var list []string
		if err := json.Unmarshal(v, &list); err == nil {
			fields[k] = list
			continue
		}
		var single string
		if err := json.Unmarshal(v, &single); err == nil {
			fields[k] = []string{single}
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
