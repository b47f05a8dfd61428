package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/inventory-occ/internal/core/domain"
)

const recordKeyPrefix = "record:"

// compareAndSetScript writes the new quantity and advances the version only
// if the stored version still matches. Redis runs the script atomically, so
// exactly one contender can win a given version.
var compareAndSetScript = redis.NewScript(`
local key = KEYS[1]
local quantity = tonumber(ARGV[1])
local expected = tonumber(ARGV[2])

local ver = redis.call('HGET', key, 'ver')
if not ver or tonumber(ver) ~= expected then
	return 0
end

redis.call('HSET', key, 'qty', quantity, 'ver', expected + 1)
return 1
`)

// RedisAdapter keeps each record as a hash {qty, ver}. It implements the same
// VersionedStore contract as MySQL for cache-resident records.
type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) Read(ctx context.Context, recordID string) (*domain.Record, error) {
	vals, err := r.client.HMGet(ctx, recordKeyPrefix+recordID, "qty", "ver").Result()
	if err != nil {
		return nil, fmt.Errorf("hmget record: %w", err)
	}
	if vals[0] == nil || vals[1] == nil {
		return nil, nil
	}

	quantity, err := strconv.ParseInt(vals[0].(string), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse qty: %w", err)
	}
	version, err := strconv.ParseUint(vals[1].(string), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse ver: %w", err)
	}

	now := time.Now()
	return &domain.Record{
		ID:        recordID,
		Quantity:  quantity,
		Version:   version,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (r *RedisAdapter) CompareAndSet(ctx context.Context, recordID string, newQuantity int64, expectedVersion uint64) (int64, error) {
	rows, err := compareAndSetScript.Run(ctx, r.client,
		[]string{recordKeyPrefix + recordID}, newQuantity, expectedVersion,
	).Int64()
	if err != nil {
		return 0, fmt.Errorf("cas script: %w", err)
	}

	return rows, nil
}

// Seed creates the record at version 0, or resets an existing one.
func (r *RedisAdapter) Seed(ctx context.Context, recordID string, quantity int64) error {
	return r.client.HSet(ctx, recordKeyPrefix+recordID, "qty", quantity, "ver", 0).Err()
}

// Delete removes the record. Test cleanup helper.
func (r *RedisAdapter) Delete(ctx context.Context, recordID string) error {
	return r.client.Del(ctx, recordKeyPrefix+recordID).Err()
}
