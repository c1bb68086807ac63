package errors

import (
	"errors"
	"net/http"
)

// Exception is an application error that carries the HTTP status code
// it should map to at the API edge.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
