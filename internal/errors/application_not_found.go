package errors

import "net/http"

var ErrApplicationNotFound = &Exception{
	Message:    "application not found",
	StatusCode: http.StatusNotFound,
}
