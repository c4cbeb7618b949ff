// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package maintenance

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pdiddy/autoaid/pkg/types"
)

const defaultRedisPrefix = "autoaid:"

// RedisStore keeps each plate's logs as a JSON list at <prefix>logs:<plate>,
// in insertion order.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore builds a store without contacting the server.
func NewRedisStore(cfg types.RedisConfig) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

// OpenRedis builds a store and pings the server. A failed ping is a
// *LookupUnavailableError.
func OpenRedis(ctx context.Context, cfg types.RedisConfig) (*RedisStore, error) {
	s := NewRedisStore(cfg)
	if err := s.client.Ping(ctx).Err(); err != nil {
		s.client.Close()
		return nil, unavailable("redis", err)
	}
	return s, nil
}

func (s *RedisStore) key(plate string) string {
	return s.prefix + "logs:" + plate
}

// FindByPlate returns the list stored for plate.
func (s *RedisStore) FindByPlate(ctx context.Context, plate string) ([]types.MaintenanceLog, error) {
	vals, err := s.client.LRange(ctx, s.key(plate), 0, -1).Result()
	if err != nil {
		return nil, unavailable("redis", err)
	}

	logs := make([]types.MaintenanceLog, 0, len(vals))
	for _, v := range vals {
		var rec types.MaintenanceLog
		if err := json.Unmarshal([]byte(v), &rec); err != nil {
			return nil, fmt.Errorf("decoding maintenance log for %s: %w", plate, err)
		}
		logs = append(logs, rec)
	}
	return logs, nil
}

// Add appends rec to its plate's list, generating a UUID log ID when empty.
func (s *RedisStore) Add(ctx context.Context, rec types.MaintenanceLog) (types.MaintenanceLog, error) {
	if rec.LogID == "" {
		rec.LogID = uuid.NewString()
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return rec, fmt.Errorf("encoding maintenance log: %w", err)
	}
	if err := s.client.RPush(ctx, s.key(rec.PlateNumber), data).Err(); err != nil {
		return rec, fmt.Errorf("redis rpush: %w", err)
	}
	return rec, nil
}

// Migrate is a no-op; Redis lists need no schema.
func (s *RedisStore) Migrate(context.Context) error { return nil }

// Close closes the Redis connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
