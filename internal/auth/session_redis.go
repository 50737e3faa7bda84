package auth

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions in Redis so they survive process restarts.
// Selected when REDIS_ADDR is configured.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

type redisSession struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

func (s *RedisStore) Create(ctx context.Context, userID, username string) (string, error) {
	token := uuid.New().String()
	payload, err := json.Marshal(redisSession{UserID: userID, Username: username})
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, "session:"+token, payload, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	val, err := s.rdb.Get(ctx, "session:"+token).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rs redisSession
	if err := json.Unmarshal([]byte(val), &rs); err != nil {
		return nil, err
	}
	return &Session{Token: token, UserID: rs.UserID, Username: rs.Username}, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, "session:"+token).Err()
}
