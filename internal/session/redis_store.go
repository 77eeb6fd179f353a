package session

import (
	"context"
	"encoding/json"

	"github.com/redis/rueidis"

	model "neighbortask.com/neighbortask/internal/models"
)

// RedisStore keeps the session snapshot under a single key as a JSON blob.
type RedisStore struct {
	client rueidis.Client
	key    string
}

func NewRedisStore(client rueidis.Client, key string) *RedisStore {
	return &RedisStore{
		client: client,
		key:    key,
	}
}

func (r *RedisStore) Save(ctx context.Context, user *model.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}

	cmd := r.client.B().Set().Key(r.key).Value(string(payload)).Build()
	return r.client.Do(ctx, cmd).Error()
}

func (r *RedisStore) Load(ctx context.Context) (*model.User, error) {
	cmd := r.client.B().Get().Key(r.key).Build()
	result := r.client.Do(ctx, cmd)

	payload, err := result.AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	cmd := r.client.B().Del().Key(r.key).Build()
	return r.client.Do(ctx, cmd).Error()
}
