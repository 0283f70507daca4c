package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"controle_pragas/internal/domain/evaluation"
	"controle_pragas/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionRedisStore keeps authoring sessions as JSON documents with a sliding TTL:
// every Save pushes the expiry forward.
type SessionRedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ interfaces.ISessionStore = (*SessionRedisStore)(nil)

func NewSessionRedisStore(client redis.Cmdable, ttl time.Duration) *SessionRedisStore {
	return &SessionRedisStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (s *SessionRedisStore) Save(ctx context.Context, sess *evaluation.Session) error {
	data, err := encodeSession(sess)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, sessionKey(sess.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionRedisStore) Get(ctx context.Context, id string) (*evaluation.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return decodeSession(data)
}

func (s *SessionRedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func encodeSession(sess *evaluation.Session) ([]byte, error) {
	data, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	return data, nil
}

func decodeSession(data []byte) (*evaluation.Session, error) {
	var sess evaluation.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}
