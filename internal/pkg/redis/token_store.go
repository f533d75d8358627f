package redis

import (
	"Snapfeed/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore 注销 Token 的签名黑名单
type TokenStore struct {
	rdb *redis.Client
}

func NewTokenStore(rdb *redis.Client) *TokenStore {
	return &TokenStore{rdb: rdb}
}

// Revoke 拉黑签名，过期时间与 Token 剩余有效期一致
func (s *TokenStore) Revoke(ctx context.Context, signature string, expiration time.Duration) error {
	return s.rdb.Set(ctx, consts.TokenRevokedKey+signature, 1, expiration).Err()
}

func (s *TokenStore) IsRevoked(ctx context.Context, signature string) (bool, error) {
	_, err := s.rdb.Get(ctx, consts.TokenRevokedKey+signature).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
