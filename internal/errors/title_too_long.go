package errors

import "net/http"

var ErrTitleTooLong = &Exception{
	Message:    "title must not exceed 200 characters",
	StatusCode: http.StatusBadRequest,
}
