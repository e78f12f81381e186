// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package leaderboard

import (
	"context"
	"time"

	"github.com/taibuivan/readalong/pkg/calendar"
)

// SnapshotSource reads ranked snapshot data from persistent storage.
type SnapshotSource interface {
	// RankedByPercent returns unfinished readers ordered by percentage,
	// descending by default or ascending when requested. A non-nil window
	// restricts results to snapshots last updated inside it.
	RankedByPercent(ctx context.Context, bookSlug string, limit int, ascending bool, window *calendar.Interval) ([]RankedReader, error)

	// Finished returns every reader at or past the finish threshold, ordered
	// by percentage then update time.
	Finished(ctx context.Context, bookSlug string) ([]RankedReader, error)

	// CountReadersOn counts distinct readers whose snapshot was last updated
	// on the given calendar day.
	CountReadersOn(ctx context.Context, bookSlug string, day time.Time) (int, error)
}

// Cache stores assembled boards under string keys with a TTL.
//
// Get reports a miss with (false, nil); errors are reserved for backend
// failures, which callers treat as misses after logging.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}
