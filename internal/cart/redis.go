package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/onu24/learnsphere-v1/internal/domain"
)

const defaultCartTTL = 7 * 24 * time.Hour

// RedisStore persists carts as JSON values keyed by session ID. Entries
// expire after a TTL so abandoned carts clean themselves up.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisOption func(*RedisStore)

// WithTTL overrides the cart expiry.
func WithTTL(d time.Duration) RedisOption {
	return func(s *RedisStore) {
		if d > 0 {
			s.ttl = d
		}
	}
}

func NewRedisStore(client *redis.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{client: client, ttl: defaultCartTTL}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (s *RedisStore) Items(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	raw, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	var items []domain.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return items, nil
}

func (s *RedisStore) Add(ctx context.Context, sessionID string, item domain.CartItem) error {
	items, err := s.Items(ctx, sessionID)
	if err != nil {
		return err
	}
	for _, existing := range items {
		if existing.CourseID == item.CourseID {
			return nil
		}
	}
	return s.save(ctx, sessionID, append(items, item))
}

func (s *RedisStore) Remove(ctx context.Context, sessionID, courseID string) error {
	items, err := s.Items(ctx, sessionID)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if item.CourseID != courseID {
			kept = append(kept, item)
		}
	}
	if len(kept) == 0 {
		return s.Clear(ctx, sessionID)
	}
	return s.save(ctx, sessionID, kept)
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (s *RedisStore) save(ctx context.Context, sessionID string, items []domain.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(sessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
