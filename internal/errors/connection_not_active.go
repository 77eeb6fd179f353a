package errors

import "net/http"

var ErrConnectionNotActive = &Exception{
	Message:    "connection is already completed",
	StatusCode: http.StatusConflict,
}
