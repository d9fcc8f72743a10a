package api

import "errors"

// Failure kinds, matched with errors.Is. The concrete *Error additionally
// carries the server's message and HTTP status via errors.As.
var (
	ErrValidation = errors.New("validation failed")
	ErrAuth       = errors.New("authentication failed")
	ErrNotFound   = errors.New("not found")
	ErrNetwork    = errors.New("server unavailable")
	ErrUnknown    = errors.New("unknown error")
)

// Error is a classified failure of a backend operation.
type Error struct {
	Kind       error  // one of the sentinel kinds above
	Message    string // server message verbatim, or a generic fallback
	StatusCode int    // zero when no response was received
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Message extracts the user-facing message from err. Server-provided
// messages pass through unmodified.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return err.Error()
}
