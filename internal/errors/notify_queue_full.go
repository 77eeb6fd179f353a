package errors

import "net/http"

var ErrNotifyQueueFull = &Exception{
	Message:    "notification queue is full",
	StatusCode: http.StatusTooManyRequests,
}
