package service

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedKeyPrefix = "auth:revoked:"

// TokenService mantém a lista de tokens revogados no Redis. Cada entrada vive
// apenas até o instante em que o token expiraria de qualquer forma.
type TokenService struct {
	Redis *redis.Client
}

func NewTokenService(rdb *redis.Client) *TokenService {
	return &TokenService{Redis: rdb}
}

// Revoke marca o JWT ID como revogado até expiresAt.
func (s *TokenService) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.Redis.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err()
}

func (s *TokenService) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	_, err := s.Redis.Get(ctx, revokedKeyPrefix+jti).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
