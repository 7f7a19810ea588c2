package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const listKeyPrefix = "listing:"

// ListTTL bounds how stale a cached listing page may be. Writes do not
// invalidate listing pages; they simply age out.
const ListTTL = 20 * time.Second

// ListKey builds the cache key for one page of a listing scope,
// e.g. ListKey("posts", 1) or ListKey("group:test-slug", 2).
func ListKey(scope string, page int) string {
	return fmt.Sprintf("%s%s:page:%d", listKeyPrefix, scope, page)
}

// Aside implements the cache-aside pattern: on hit, dest is populated from the
// cached JSON value; on miss, fetch runs and its result (already stored in dest
// by the caller's closure) is written back with the given TTL. A nil client
// degrades to calling fetch directly.
func Aside(ctx context.Context, key string, dest interface{}, ttl time.Duration, fetch func() error) error {
	if client == nil {
		return fetch()
	}

	raw, err := client.Get(ctx, key).Bytes()
	if err == nil {
		if unmarshalErr := json.Unmarshal(raw, dest); unmarshalErr == nil {
			return nil
		}
		// Corrupt entry: drop it and fall through to fetch.
		client.Del(ctx, key)
	}

	if err := fetch(); err != nil {
		return err
	}

	if data, marshalErr := json.Marshal(dest); marshalErr == nil {
		client.Set(ctx, key, data, ttl)
	}
	return nil
}

// ClearListings removes every cached listing page. This is the only
// invalidation path besides TTL expiry.
func ClearListings(ctx context.Context) error {
	if client == nil {
		return nil
	}

	iter := client.Scan(ctx, 0, listKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
	return iter.Err()
}
