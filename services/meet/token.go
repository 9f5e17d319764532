// File: services/meet/token.go
package meet

import (
	"context"

	"github.com/go-redis/redis/v8"
)

const authTokenKey = "meetAuth:token"

// RedisTokenSource reads the bearer token stored by the sign-in flow from the
// auth cache. A missing key means no token, not an error.
type RedisTokenSource struct {
	client *redis.Client
}

func NewRedisTokenSource(client *redis.Client) *RedisTokenSource {
	return &RedisTokenSource{client: client}
}

func (s *RedisTokenSource) Token(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, authTokenKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}
