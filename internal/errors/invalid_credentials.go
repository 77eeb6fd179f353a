package errors

import "net/http"

var ErrInvalidCredentials = &Exception{
	Message:    "invalid credentials",
	StatusCode: http.StatusUnauthorized,
}
