// Package verification is the downstream listener for user_registered
// events: it issues the email-verification token a mailer picks up. The
// queue delivers at-least-once, so everything here tolerates duplicates.
package verification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	tokenKeyPrefix = "verify:email:"
	TokenTTL       = 48 * time.Hour
)

func TokenKey(userID string) string {
	return tokenKeyPrefix + userID
}

//go:generate mockgen -source=token_store.go -destination=mock/token_store_mock.go -package=mock

// TokenStore issues one verification token per user.
type TokenStore interface {
	// Issue returns the user's token. fresh is false when a token already
	// existed (duplicate event delivery); the existing token is returned
	// untouched.
	Issue(ctx context.Context, userID string) (token string, fresh bool, err error)
}

type redisTokenStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisTokenStore(rdb redis.Cmdable) TokenStore {
	return &redisTokenStore{rdb: rdb, ttl: TokenTTL}
}

func (s *redisTokenStore) Issue(ctx context.Context, userID string) (string, bool, error) {
	token := uuid.NewString()

	// SETNX keeps the first token; a redelivered event must not rotate it
	// out from under an email that already went out.
	set, err := s.rdb.SetNX(ctx, TokenKey(userID), token, s.ttl).Result()
	if err != nil {
		return "", false, err
	}
	if set {
		return token, true, nil
	}

	existing, err := s.rdb.Get(ctx, TokenKey(userID)).Result()
	if err != nil {
		return "", false, err
	}
	return existing, false, nil
}
