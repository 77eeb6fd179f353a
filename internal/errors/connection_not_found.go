package errors

import "net/http"

var ErrConnectionNotFound = &Exception{
	Message:    "connection not found",
	StatusCode: http.StatusNotFound,
}
