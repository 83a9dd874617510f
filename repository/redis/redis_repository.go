package redis

import (
	"context"
	"time"

	redisclient "github.com/abmshq/abms-backend/cmd/redis"
)

// Repository stores bearer-token sessions: one key per token id (jti)
// holding the username the token was issued to.
type Repository interface {
	SetSession(ctx context.Context, jti, username string, ttl time.Duration) error
	GetSession(ctx context.Context, jti string) (string, error)
	DeleteSession(ctx context.Context, jti string) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// SetSession stores a session with username and TTL
func (r *redis) SetSession(ctx context.Context, jti, username string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "session:" + jti
	return client.Set(ctx, key, username, ttl).Err()
}

// GetSession retrieves the username bound to a token id
func (r *redis) GetSession(ctx context.Context, jti string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	key := "session:" + jti
	return client.Get(ctx, key).Result()
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, jti string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "session:" + jti
	return client.Del(ctx, key).Err()
}
