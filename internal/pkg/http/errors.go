package http

import (
	"errors"
	"fmt"
	"net/http"
)

const defaultServerErrorMessage = "server error"

var (
	ErrNetwork      = errors.New("network error")
	ErrDecoding     = errors.New("decoding error")
	ErrServer       = errors.New("server error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnknown      = errors.New("unknown error")
)

// ServerError is a business or infrastructure failure reported by the backend.
// It matches ErrServer with errors.Is.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error with status %d: %s", e.StatusCode, e.Message)
}

func (e *ServerError) Is(target error) bool {
	return target == ErrServer
}

// IsServerError reports whether err is a ServerError with the given status code.
func IsServerError(err error, statusCode int) bool {
	var serverErr *ServerError
	return errors.As(err, &serverErr) && serverErr.StatusCode == statusCode
}

func isUnauthorizedStatus(code int) bool {
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

func isSuccessfulStatus(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

func isErrorStatus(code int) bool {
	return code >= http.StatusBadRequest
}
