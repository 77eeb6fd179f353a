package queue

import (
	"context"
	"errors"
)

// TokenManager bounds the notification delivery queue. A token is acquired
// before a notification is enqueued and released once its delivery finishes.
type TokenManager interface {
	AcquireToken(ctx context.Context) error

	ReleaseToken(ctx context.Context) error

	InitializeTokens(ctx context.Context, count int) error
}

var ErrNoTokenAvailable = errors.New("no queue token available")
