package errors

import "net/http"

var ErrDuplicateApplication = &Exception{
	Message:    "an active application for this task already exists",
	StatusCode: http.StatusConflict,
}
