package errors

import "net/http"

var ErrNotTaskOwner = &Exception{
	Message:    "only the task poster may do this",
	StatusCode: http.StatusForbidden,
}
