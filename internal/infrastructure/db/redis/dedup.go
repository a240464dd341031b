package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker provides submission attempt idempotency checks backed by
// Redis. Key format: attempt:<attempt_id>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this attempt has already been submitted.
func (d *DedupChecker) IsDuplicate(ctx context.Context, attemptID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(attemptID)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this attempt has been submitted (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, attemptID string) error {
	return d.client.Set(ctx, d.key(attemptID), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(attemptID string) string {
	return "attempt:" + attemptID
}
