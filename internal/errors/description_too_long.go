package errors

import "net/http"

var ErrDescriptionTooLong = &Exception{
	Message:    "description must not exceed 1000 characters",
	StatusCode: http.StatusBadRequest,
}
