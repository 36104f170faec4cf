// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/flix/internal/platform/constants"
)

// RedisRevocationStore shares revoked token IDs between replicas.
type RedisRevocationStore struct {
	client redis.UniversalClient
}

// NewRedisRevocationStore creates a Redis-backed [RevocationStore].
func NewRedisRevocationStore(client redis.UniversalClient) *RedisRevocationStore {
	return &RedisRevocationStore{client: client}
}

var _ RevocationStore = (*RedisRevocationStore)(nil)

/*
Revoke stores tokenID with a TTL so that Redis forgets it once the token would
have expired anyway.

Parameters:
  - context: context.Context
  - tokenID: the token's "jti" claim
  - ttl: remaining lifetime of the token

Returns:
  - error: connectivity errors
*/
func (repository *RedisRevocationStore) Revoke(context context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	key := fmt.Sprintf("%s%s", constants.RedisPrefixRevokedToken, tokenID)
	if err := repository.client.Set(context, key, 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis_revocation_set_failed: %w", err)
	}
	return nil
}

// IsRevoked reports whether the revocation key for tokenID exists.
func (repository *RedisRevocationStore) IsRevoked(context context.Context, tokenID string) (bool, error) {
	key := fmt.Sprintf("%s%s", constants.RedisPrefixRevokedToken, tokenID)

	count, err := repository.client.Exists(context, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis_revocation_exists_failed: %w", err)
	}
	return count > 0, nil
}
