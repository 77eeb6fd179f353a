package errors

import "net/http"

var ErrOwnTaskApplication = &Exception{
	Message:    "cannot apply to your own task",
	StatusCode: http.StatusForbidden,
}
