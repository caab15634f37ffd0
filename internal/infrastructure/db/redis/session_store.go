package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shoplite/storefront/internal/core/domain"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps opaque session tokens in Redis.
// Key format: session:<token>, value is the JSON-encoded identity, expiring
// after the configured TTL.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Create binds a fresh token to the identity. The token is 256 bits from
// crypto/rand, so it cannot be guessed from anything user-visible.
func (s *SessionStore) Create(ctx context.Context, userID string, role domain.Role) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("session token: %w", err)
	}

	payload, err := json.Marshal(domain.Session{UserID: userID, Role: role})
	if err != nil {
		return "", fmt.Errorf("session encode: %w", err)
	}

	if err := s.client.Set(ctx, s.key(token), payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("session store: %w", err)
	}
	return token, nil
}

// Resolve returns the identity bound to token.
func (s *SessionStore) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	val, err := s.client.Get(ctx, s.key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session lookup: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, fmt.Errorf("session decode: %w", err)
	}
	return &sess, nil
}

// Destroy invalidates token. An unknown token reports ErrSessionNotFound so
// the caller can distinguish a no-op from a real logout.
func (s *SessionStore) Destroy(ctx context.Context, token string) error {
	n, err := s.client.Del(ctx, s.key(token)).Result()
	if err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	if n == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (s *SessionStore) key(token string) string {
	return sessionKeyPrefix + token
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
