package web

// Error is a request error carrying the http status the caller should see.
// Fields holds per-field validation messages when binding fails.
type Error struct {
	Err    error
	Status int
	Fields map[string]string
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// NewRequestError wraps a known, safe-to-surface error with a status code.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}

// IsRequestError reports whether err was produced by NewRequestError.
func IsRequestError(err error) bool {
	_, ok := err.(*Error)
	return ok
}
