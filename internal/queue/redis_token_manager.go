package queue

import (
	"context"

	"github.com/redis/rueidis"
)

// RedisTokenManager keeps the queue tokens in a redis list so the notification
// queue bound survives process restarts.
type RedisTokenManager struct {
	client rueidis.Client
	key    string
}

func NewRedisTokenManager(client rueidis.Client, queueKey string) *RedisTokenManager {
	return &RedisTokenManager{
		client: client,
		key:    queueKey,
	}
}

func (r *RedisTokenManager) AcquireToken(ctx context.Context) error {
	cmd := r.client.B().Lpop().Key(r.key).Build()
	if err := r.client.Do(ctx, cmd).Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return ErrNoTokenAvailable
		}
		return err
	}
	return nil
}

func (r *RedisTokenManager) ReleaseToken(ctx context.Context) error {
	cmd := r.client.B().Rpush().Key(r.key).Element("1").Build()
	return r.client.Do(ctx, cmd).Error()
}

// InitializeTokens resets the list to exactly count tokens. Called once at
// startup, before any worker runs.
func (r *RedisTokenManager) InitializeTokens(ctx context.Context, count int) error {
	delCmd := r.client.B().Del().Key(r.key).Build()
	if err := r.client.Do(ctx, delCmd).Error(); err != nil {
		return err
	}

	if count <= 0 {
		return nil
	}

	push := r.client.B().Rpush().Key(r.key).Element("1")
	for i := 1; i < count; i++ {
		push = push.Element("1")
	}
	return r.client.Do(ctx, push.Build()).Error()
}
