package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNetwork indicates a transport-level failure reaching the upstream API
// (connection refused, DNS failure, timeout). No usable response was produced.
var ErrNetwork = errors.New("network error")

// ErrDecode indicates the upstream response body could not be decoded into
// the expected shape. This is distinct from a well-formed JSON body that
// carries an error status (see ServerError).
var ErrDecode = errors.New("response decode error")

// ErrSuperseded indicates a refresh completed after a newer refresh had
// already been started; its result was discarded to keep last-request-wins
// semantics.
var ErrSuperseded = errors.New("refresh superseded by a newer request")

// ErrAuthExpired indicates the upstream rejected the request with HTTP 401.
// Callers treat this as session expiry rather than a transient failure.
var ErrAuthExpired = errors.New("authentication expired")

// ServerError carries the message of a well-formed upstream envelope whose
// status was not "success". The message is surfaced to the user verbatim.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return "upstream reported an error"
	}
	return fmt.Sprintf("upstream error: %s", e.Message)
}

// NewServerError wraps an upstream error message.
func NewServerError(message string) error {
	return &ServerError{Message: message}
}

// AsServerError reports whether err is (or wraps) a ServerError, returning
// it for message extraction.
func AsServerError(err error) (*ServerError, bool) {
	var se *ServerError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
