// Package session implements the gateway's session store: the triple of
// access token, refresh token, and role, keyed by an opaque session ID.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tivra/storefront-gateway/internal/core/domain"
)

const (
	defaultTTL     = 24 * time.Hour
	connectTimeout = 5 * time.Second
)

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr string
	DB   int
	TTL  time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// RedisStore persists each session as a hash under session:<id> with a TTL.
// All three fields are written in one HSET and removed in one DEL, so a
// session is never observable half-written.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an established Redis client. A TTL of zero falls back
// to 24h.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Set(ctx context.Context, sess domain.Session) error {
	key := s.key(sess.ID)
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key,
		"access_token", sess.AccessToken,
		"refresh_token", sess.RefreshToken,
		"role", string(sess.Role),
	)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, domain.ErrNoSession
	}
	fields, err := s.client.HGetAll(ctx, s.key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNoSession
		}
		return nil, fmt.Errorf("session get: %w", err)
	}
	if len(fields) == 0 || fields["access_token"] == "" {
		return nil, domain.ErrNoSession
	}
	return &domain.Session{
		ID:           sessionID,
		AccessToken:  fields["access_token"],
		RefreshToken: fields["refresh_token"],
		Role:         domain.Role(fields["role"]),
	}, nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}

func (s *RedisStore) key(sessionID string) string {
	return "session:" + sessionID
}
