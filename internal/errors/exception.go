package errors

import (
	"errors"
	"net/http"
)

// Exception is a service error carrying the HTTP status it should surface as.
// Each error variable lives in its own file, named after the condition.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// StatusCode extracts the HTTP status of err, defaulting to 500 for anything
// that is not an Exception.
func StatusCode(err error) int {
	var ex *Exception
	if errors.As(err, &ex) {
		return ex.StatusCode
	}
	return http.StatusInternalServerError
}
