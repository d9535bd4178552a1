package orphan

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

type RedisLedger struct {
	client *redis.Client
	prefix string
}

// NewRedisLedger creates a Redis-backed ledger. Entries do not expire.
func NewRedisLedger(client *redis.Client) *RedisLedger {
	return &RedisLedger{
		client: client,
		prefix: "orphan:",
	}
}

func (r *RedisLedger) key(userID string) string {
	return r.prefix + userID
}

func (r *RedisLedger) indexKey() string {
	return r.prefix + "index"
}

func (r *RedisLedger) Record(ctx context.Context, e Entry) error {
	if e.UserID == "" {
		return fmt.Errorf("orphan: missing user_id")
	}

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("orphan: failed to marshal: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.key(e.UserID), data, 0)
	pipe.SAdd(ctx, r.indexKey(), e.UserID)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *RedisLedger) Get(ctx context.Context, userID string) (*Entry, error) {
	val, err := r.client.Get(ctx, r.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil // not found
	}
	if err != nil {
		return nil, err
	}

	var e Entry
	if err := json.Unmarshal([]byte(val), &e); err != nil {
		return nil, fmt.Errorf("orphan: failed to unmarshal: %w", err)
	}

	return &e, nil
}

// List returns all recorded entries, oldest first.
func (r *RedisLedger) List(ctx context.Context) ([]Entry, error) {
	ids, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		e, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if e != nil {
			entries = append(entries, *e)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	return entries, nil
}
