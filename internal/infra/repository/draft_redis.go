package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/radoraza-hash/hair-style-it/internal/availability"
	domain "github.com/radoraza-hash/hair-style-it/internal/domain/booking"
)

// DraftRedisStore keeps booking drafts as JSON with a sliding TTL.
type DraftRedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDraftRedisStore(client *redis.Client, ttl time.Duration) *DraftRedisStore {
	return &DraftRedisStore{client: client, ttl: ttl}
}

func draftKey(id uuid.UUID) string {
	return "draft:" + id.String()
}

func (s *DraftRedisStore) Get(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	raw, err := s.client.Get(ctx, draftKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}

	var d domain.Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &d, nil
}

func (s *DraftRedisStore) Save(ctx context.Context, d *domain.Draft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(d.ID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (s *DraftRedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, draftKey(id), seqKey(id.String())).Err(); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

// RedisSequencer shares slot query tokens between API instances.
type RedisSequencer struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSequencer(client *redis.Client, ttl time.Duration) *RedisSequencer {
	return &RedisSequencer{client: client, ttl: ttl}
}

func seqKey(key string) string {
	return "draft:" + key + ":seq"
}

func (s *RedisSequencer) Next(ctx context.Context, key string) (uint64, error) {
	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, seqKey(key))
	pipe.Expire(ctx, seqKey(key), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return uint64(incr.Val()), nil
}

func (s *RedisSequencer) Latest(ctx context.Context, key string) (uint64, error) {
	raw, err := s.client.Get(ctx, seqKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("latest sequence: %w", err)
	}
	return strconv.ParseUint(raw, 10, 64)
}

var (
	_ domain.DraftStore      = (*DraftRedisStore)(nil)
	_ availability.Sequencer = (*RedisSequencer)(nil)
)
