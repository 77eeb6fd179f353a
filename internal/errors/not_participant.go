package errors

import "net/http"

var ErrNotParticipant = &Exception{
	Message:    "not a participant of this connection",
	StatusCode: http.StatusForbidden,
}
