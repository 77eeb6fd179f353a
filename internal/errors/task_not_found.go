package errors

import "net/http"

// ErrTaskNotFound also covers lookups through a task reference, such as a
// message thread for a task id that does not resolve.
var ErrTaskNotFound = &Exception{
	Message:    "task not found",
	StatusCode: http.StatusNotFound,
}
