package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Keys persisted in a browser session. The provider token and the super-admin
// token are independent credentials; both can coexist in one session.
const (
	KeyHealthcareToken = "healthcareToken"
	KeySuperAdminToken = "superAdminToken"
	KeyProviderID      = "providerId"
	KeyUserEmail       = "userEmail"

	// One-shot entries read with Pop.
	KeyFlash            = "flash"
	KeyFlashError       = "flashError"
	KeyAdminCredentials = "adminCredentials"
)

// TTL is how long an idle session survives.
const TTL = 24 * time.Hour

// Store is the key-value contract every view reads tokens and flash
// messages through. Get returns "" for absent keys; Pop reads and removes.
type Store interface {
	Set(ctx context.Context, sid, key, value string) error
	Get(ctx context.Context, sid, key string) (string, error)
	Remove(ctx context.Context, sid, key string) error
	Pop(ctx context.Context, sid, key string) (string, error)
	Clear(ctx context.Context, sid string) error
}

// RedisStore keeps each session as a hash under session:<id>.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(sid string) string {
	return "session:" + sid
}

func (s *RedisStore) Set(ctx context.Context, sid, key, value string) error {
	if err := s.client.HSet(ctx, sessionKey(sid), key, value).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, sessionKey(sid), TTL).Err()
}

func (s *RedisStore) Get(ctx context.Context, sid, key string) (string, error) {
	v, err := s.client.HGet(ctx, sessionKey(sid), key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s *RedisStore) Remove(ctx context.Context, sid, key string) error {
	return s.client.HDel(ctx, sessionKey(sid), key).Err()
}

func (s *RedisStore) Pop(ctx context.Context, sid, key string) (string, error) {
	v, err := s.Get(ctx, sid, key)
	if err != nil || v == "" {
		return "", err
	}
	if err := s.Remove(ctx, sid, key); err != nil {
		return "", err
	}
	return v, nil
}

func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	return s.client.Del(ctx, sessionKey(sid)).Err()
}
