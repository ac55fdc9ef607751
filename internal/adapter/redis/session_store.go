package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Dmungal1308/QuickSales-sub000/internal/session"
)

// SessionStore backs the session slot with redis. It exists for headless
// deployments (automation agents, shared test rigs) where the session has
// to survive process restarts; interactive use keeps the in-memory store.
type SessionStore struct {
	client *redis.Client
	key    string
}

func NewSessionStore(client *redis.Client, key string) *SessionStore {
	if key == "" {
		key = "quicksales:session"
	}
	return &SessionStore{client: client, key: key}
}

func (s *SessionStore) Save(ctx context.Context, sess session.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session to redis: %w", err)
	}
	return nil
}

func (s *SessionStore) Current(ctx context.Context) (session.Session, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return session.Session{}, session.ErrNotLoggedIn
		}
		return session.Session{}, fmt.Errorf("failed to read session from redis: %w", err)
	}

	var sess session.Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return session.Session{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if !sess.LoggedIn() {
		return session.Session{}, session.ErrNotLoggedIn
	}
	return sess, nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to clear session in redis: %w", err)
	}
	return nil
}
