package storage

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey - ключ таблицы рекордов в Redis.
const DefaultRedisKey = "polarity:highscores"

// RedisStore хранит рекорды одной строкой JSON под ключом.
type RedisStore struct {
	client redis.UniversalClient
	key    string
	closed atomic.Bool
}

// NewRedisStore подключается к addr. Redis ленив, ошибки появятся при первом запросе.
func NewRedisStore(addr string) (*RedisStore, error) {
	if addr == "" {
		return nil, errors.New("storage: redis address is required")
	}
	return NewRedisStoreWithClient(redis.NewClient(&redis.Options{Addr: addr}), DefaultRedisKey), nil
}

func NewRedisStoreWithClient(client redis.UniversalClient, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Load(ctx context.Context) ([]HighScore, error) {
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	return decode(data)
}

func (s *RedisStore) Save(ctx context.Context, scores []HighScore) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}
	data, err := encode(scores)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.client.Close()
}
