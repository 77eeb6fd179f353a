package errors

import "net/http"

var ErrUnauthenticated = &Exception{
	Message:    "authentication required",
	StatusCode: http.StatusUnauthorized,
}
