package service

import (
	"context"
	"fmt"
	"time"

	"hospital-admin-api/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// TokenStore is the Redis allow-list of issued tokens.
// Keys look like access_token:{userID}:{tokenID}; a token is valid only while its key exists.
type TokenStore struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewTokenStore(redisClient *redis.Client, log *logrus.Logger) *TokenStore {
	return &TokenStore{
		redisClient: redisClient,
		log:         log,
	}
}

func tokenKey(tokenType jwt.TokenType, userID uint, tokenID string) string {
	return fmt.Sprintf("%s_token:%d:%s", tokenType, userID, tokenID)
}

// Store registers a freshly issued token for ttl
func (s *TokenStore) Store(ctx context.Context, tokenType jwt.TokenType, userID uint, tokenID string, ttl time.Duration) error {
	if err := s.redisClient.Set(ctx, tokenKey(tokenType, userID, tokenID), "valid", ttl).Err(); err != nil {
		return fmt.Errorf("store %s token: %w", tokenType, err)
	}
	return nil
}

// Exists reports whether the token is still on the allow-list
func (s *TokenStore) Exists(ctx context.Context, tokenType jwt.TokenType, userID uint, tokenID string) (bool, error) {
	n, err := s.redisClient.Exists(ctx, tokenKey(tokenType, userID, tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("check %s token: %w", tokenType, err)
	}
	return n > 0, nil
}

// Revoke removes a single token. Revoking an unknown token is not an error.
func (s *TokenStore) Revoke(ctx context.Context, tokenType jwt.TokenType, userID uint, tokenID string) error {
	if err := s.redisClient.Del(ctx, tokenKey(tokenType, userID, tokenID)).Err(); err != nil {
		return fmt.Errorf("revoke %s token: %w", tokenType, err)
	}
	return nil
}

// RevokeAll removes every access and refresh token of the user
func (s *TokenStore) RevokeAll(ctx context.Context, userID uint) error {
	for _, tokenType := range []jwt.TokenType{jwt.AccessToken, jwt.RefreshToken} {
		pattern := fmt.Sprintf("%s_token:%d:*", tokenType, userID)
		iter := s.redisClient.Scan(ctx, 0, pattern, 100).Iterator()

		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("scan %s tokens: %w", tokenType, err)
		}

		if len(keys) > 0 {
			if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("revoke %s tokens: %w", tokenType, err)
			}
		}
		s.log.Debugf("Revoked %d %s token(s) of user %d", len(keys), tokenType, userID)
	}
	return nil
}
