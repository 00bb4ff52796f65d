package eleyo

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned by operations the API binding does not map yet.
var ErrNotImplemented = errors.New("not implemented")

// InitializerError reports an invalid argument when building a client.
type InitializerError struct {
	Field  string
	Reason string
}

func (e *InitializerError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// RequirementError reports client state an operation needs but does not have.
type RequirementError struct {
	Field  string
	Reason string
}

func (e *RequirementError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// APIError is returned for any non-2xx response. Body is the raw response body.
type APIError struct {
	Code int
	Body string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api request failed with status %d: %s", e.Code, e.Body)
}
