package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

const (
	summariesKey = "codeclub:report:event-attendance"
	versionKey   = "codeclub:report:event-attendance:version"
)

// SummaryCache stores the all-events attendance report for a fixed TTL.
// Every ledger write bumps a version counter through InvalidateSummaries;
// an entry tagged with an older version reads as a miss.
type SummaryCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

type summaryEntry struct {
	Version   int64                           `json:"version"`
	Summaries []domain.EventAttendanceSummary `json:"summaries"`
}

// NewSummaryCache creates a cache over client with the given TTL.
func NewSummaryCache(client redis.Cmdable, ttl time.Duration) *SummaryCache {
	return &SummaryCache{client: client, ttl: ttl}
}

// GetSummaries returns the cached report and the current version. ok is
// false on a miss or when the entry predates the current version.
func (c *SummaryCache) GetSummaries(ctx context.Context) (summaries []domain.EventAttendanceSummary, version int64, ok bool, err error) {
	vals, err := c.client.MGet(ctx, versionKey, summariesKey).Result()
	if err != nil {
		return nil, 0, false, fmt.Errorf("get cached summaries: %w", err)
	}

	if raw, isSet := vals[0].(string); isSet {
		version, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, 0, false, fmt.Errorf("parse summaries version: %w", err)
		}
	}

	raw, isSet := vals[1].(string)
	if !isSet {
		return nil, version, false, nil
	}

	var entry summaryEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, 0, false, fmt.Errorf("decode cached summaries: %w", err)
	}
	if entry.Version != version {
		return nil, version, false, nil
	}

	return entry.Summaries, version, true, nil
}

// SetSummaries stores the report, tagged with the version it was computed
// under, with the cache TTL.
func (c *SummaryCache) SetSummaries(ctx context.Context, version int64, summaries []domain.EventAttendanceSummary) error {
	raw, err := json.Marshal(summaryEntry{Version: version, Summaries: summaries})
	if err != nil {
		return fmt.Errorf("encode summaries: %w", err)
	}

	if err := c.client.Set(ctx, summariesKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set cached summaries: %w", err)
	}

	return nil
}

// InvalidateSummaries advances the version so the current entry, and any
// report computed before this call, is no longer served.
func (c *SummaryCache) InvalidateSummaries(ctx context.Context) error {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		return fmt.Errorf("bump summaries version: %w", err)
	}
	return nil
}
