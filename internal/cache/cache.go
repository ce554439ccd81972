package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// GetOrCompute looks key up in store and returns the decoded value on a hit
// without invoking producer. On a miss it invokes producer, stores the
// JSON-encoded result with ttl, and returns it.
//
// Two concurrent misses for the same key may both invoke producer and both
// write; last write wins.
func GetOrCompute[T any](ctx context.Context, store Store, key string, ttl time.Duration, producer func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	raw, hit, err := store.Get(ctx, key)
	if err != nil {
		return zero, err
	}
	if hit {
		var out T
		if err := json.Unmarshal([]byte(raw), &out); err != nil {
			return zero, fmt.Errorf("decode cached value for %q: %w", key, err)
		}
		return out, nil
	}

	out, err := producer(ctx)
	if err != nil {
		return zero, err
	}

	buf, err := json.Marshal(out)
	if err != nil {
		return zero, fmt.Errorf("encode value for %q: %w", key, err)
	}
	if err := store.Set(ctx, key, string(buf), ttl); err != nil {
		return zero, err
	}
	return out, nil
}
