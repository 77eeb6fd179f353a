package session

import (
	"context"
	"errors"

	model "neighbortask.com/neighbortask/internal/models"
)

// ErrNoSnapshot is returned by Load when no session is persisted.
var ErrNoSnapshot = errors.New("no session snapshot")

// SnapshotStore persists the single live session user. The full record is
// written on every save and removed on logout; there is no partial update.
type SnapshotStore interface {
	Save(ctx context.Context, user *model.User) error

	Load(ctx context.Context) (*model.User, error)

	Clear(ctx context.Context) error
}
