package identity

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
)

// RedisOptions configures the session store connection
type RedisOptions struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
	TLS         bool
}

// NewRedisClient connects to redis and verifies the connection
func NewRedisClient(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	options := &redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: opts.DialTimeout,
	}
	if opts.TLS {
		options.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(options)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// SessionStore tracks live sessions so a signed token can be revoked before it expires
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func sessionKey(userID, sessionID string) string {
	return fmt.Sprintf("session:%s:%s", userID, sessionID)
}

// Save records a session for ttl
func (s *SessionStore) Save(ctx context.Context, userID, sessionID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(userID, sessionID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("%w: save session: %v", errs.ErrTransientStore, err)
	}
	return nil
}

// Exists reports whether the session is still live
func (s *SessionStore) Exists(ctx context.Context, userID, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(userID, sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: check session: %v", errs.ErrTransientStore, err)
	}
	return n == 1, nil
}

// Delete ends a session
func (s *SessionStore) Delete(ctx context.Context, userID, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(userID, sessionID)).Err(); err != nil {
		return fmt.Errorf("%w: delete session: %v", errs.ErrTransientStore, err)
	}
	return nil
}

// DeleteAll ends every session of a user
func (s *SessionStore) DeleteAll(ctx context.Context, userID string) error {
	iter := s.client.Scan(ctx, 0, sessionKey(userID, "*"), 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%w: scan sessions: %v", errs.ErrTransientStore, err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: delete sessions: %v", errs.ErrTransientStore, err)
	}
	return nil
}

// Ping checks the redis connection
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
