package apiclient

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// messageKeys are tried in order when pulling a human readable message out of
// a backend error payload.
var messageKeys = []string{"error", "message", "detail"}

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status  int
	Message string
	Body    []byte
}

func newAPIError(status int, body []byte) *APIError {
	e := &APIError{Status: status, Body: body}
	if !gjson.ValidBytes(body) {
		return e
	}
	for _, key := range messageKeys {
		if r := gjson.GetBytes(body, key); r.Exists() && r.Type == gjson.String && r.String() != "" {
			e.Message = r.String()
			break
		}
	}
	return e
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

// ErrorMessage returns the backend-provided message carried by err, or fallback.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// IsNotFound reports whether the backend answered 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
