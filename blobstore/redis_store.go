package blobstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each blob in a redis hash with "data" and "version"
// fields. Version checks run inside a WATCH transaction, so a concurrent
// write between read and commit retries or fails stale instead of being
// lost.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a store. All keys are namespaced under prefix
// (e.g. "blob:").
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "blob:"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(k string) string { return s.prefix + k }

func (s *RedisStore) Get(ctx context.Context, key string) (Blob, bool, error) {
	vals, err := s.client.HGetAll(ctx, s.key(key)).Result()
	if err != nil {
		return Blob{}, false, err
	}
	if len(vals) == 0 {
		return Blob{}, false, nil
	}
	blob := Blob{Data: []byte(vals["data"])}
	if v, ok := vals["version"]; ok {
		blob.Version = parseVersion(v)
	}
	return blob, true, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, data []byte, expect int64) (int64, error) {
	rkey := s.key(key)
	var newVersion int64

	txn := func(tx *redis.Tx) error {
		cur, err := tx.HGet(ctx, rkey, "version").Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if errors.Is(err, redis.Nil) {
			cur = 0
		}
		if expect != ForceWrite && cur != expect {
			return ErrStale
		}
		newVersion = cur + 1
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, rkey, "data", data, "version", newVersion)
			return nil
		})
		return err
	}

	// A handful of retries to ride out unrelated concurrent writers; a
	// genuine version mismatch surfaces as ErrStale immediately.
	for i := 0; i < 3; i++ {
		err := s.client.Watch(ctx, txn, rkey)
		if err == nil {
			return newVersion, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return 0, err
	}
	return 0, ErrStale
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}

func parseVersion(s string) int64 {
	var v int64
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		v = v*10 + int64(c-'0')
	}
	return v
}
