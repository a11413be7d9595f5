package booking

import (
	"context"
	"encoding/json"
	"time"

	"concierge/models"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "assistant:session:"

// RedisSessionStore keeps resolution sessions in Redis with a TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.ResolutionSession, error) {
	data, err := s.client.Get(ctx, sessionPrefix+sessionID).Result()
	if err != nil {
		return nil, err
	}
	var session models.ResolutionSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, session *models.ResolutionSession) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionPrefix+session.SessionID, b, s.ttl).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionPrefix+sessionID).Err()
}
