// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package leaderboard

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/taibuivan/readalong/internal/platform/constants"
	"github.com/taibuivan/readalong/pkg/calendar"
)

// Variant identifiers double as the cache-key suffix for each ranked view.
const (
	VariantTop        = "top"
	VariantBottom     = "bottom"
	VariantTopWeek    = "top-week"
	VariantBottomWeek = "bottom-week"
	VariantFinished   = "finished"
)

type Service struct {
	source SnapshotSource
	cache  Cache
	logger *slog.Logger

	// ttl is the sole invalidation mechanism for cached boards.
	ttl time.Duration

	// flight collapses concurrent recomputations of the same expired key
	// into a single database query.
	flight singleflight.Group

	// now is the clock used for week windows; injectable for tests.
	now func() time.Time
}

func NewService(source SnapshotSource, cache Cache, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{
		source: source,
		cache:  cache,
		logger: logger,
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock overrides the service clock. Intended for tests.
func (service *Service) WithClock(now func() time.Time) *Service {
	service.now = now
	return service
}

// TopReaders returns the highest-percentage unfinished readers.
func (service *Service) TopReaders(ctx context.Context, bookSlug string) (*Board, error) {
	return service.board(ctx, bookSlug, VariantTop, func(ctx context.Context) ([]RankedReader, error) {
		return service.source.RankedByPercent(ctx, bookSlug, constants.LeaderboardSize, false, nil)
	})
}

// BottomReaders returns the lowest-percentage unfinished readers.
func (service *Service) BottomReaders(ctx context.Context, bookSlug string) (*Board, error) {
	return service.board(ctx, bookSlug, VariantBottom, func(ctx context.Context) ([]RankedReader, error) {
		return service.source.RankedByPercent(ctx, bookSlug, constants.LeaderboardSize, true, nil)
	})
}

// TopReadersThisWeek restricts the top ranking to snapshots updated inside
// the Monday-anchored current week.
func (service *Service) TopReadersThisWeek(ctx context.Context, bookSlug string) (*Board, error) {
	window := calendar.ThisWeek(service.now())
	return service.board(ctx, bookSlug, VariantTopWeek, func(ctx context.Context) ([]RankedReader, error) {
		return service.source.RankedByPercent(ctx, bookSlug, constants.LeaderboardSize, false, &window)
	})
}

// BottomReadersThisWeek restricts the bottom ranking to snapshots updated
// inside the Monday-anchored current week.
func (service *Service) BottomReadersThisWeek(ctx context.Context, bookSlug string) (*Board, error) {
	window := calendar.ThisWeek(service.now())
	return service.board(ctx, bookSlug, VariantBottomWeek, func(ctx context.Context) ([]RankedReader, error) {
		return service.source.RankedByPercent(ctx, bookSlug, constants.LeaderboardSize, true, &window)
	})
}

// FinishedReaders returns everyone at or past the finish threshold, ordered
// by percentage then finish time. The list is unbounded: finishing is an
// honor roll, not a competition for slots.
func (service *Service) FinishedReaders(ctx context.Context, bookSlug string) (*Board, error) {
	return service.board(ctx, bookSlug, VariantFinished, func(ctx context.Context) ([]RankedReader, error) {
		return service.source.Finished(ctx, bookSlug)
	})
}

// ReadersToday counts readers who logged progress on the current calendar
// day. It is computed live: the count backs a small dashboard figure and
// caching it would make "today" lag by up to a full cache period.
func (service *Service) ReadersToday(ctx context.Context, bookSlug string) (int, error) {
	return service.source.CountReadersOn(ctx, bookSlug, calendar.DateOf(service.now()))
}

// board serves one ranked view through the cache.
//
// A cache read failure is logged and treated as a miss so a degraded cache
// backend slows reads down instead of breaking them. The recomputation for a
// given key is deduplicated across concurrent callers.
func (service *Service) board(ctx context.Context, bookSlug, variant string, fetch func(context.Context) ([]RankedReader, error)) (*Board, error) {
	key := constants.RedisPrefixLeaderboard + bookSlug + ":" + variant

	var cached Board
	found, err := service.cache.Get(ctx, key, &cached)
	if err != nil {
		service.logger.WarnContext(ctx, "leaderboard_cache_read_failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
	if found {
		return &cached, nil
	}

	result, err, _ := service.flight.Do(key, func() (interface{}, error) {
		readers, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		board := newBoard(variant, readers)

		if err := service.cache.Set(ctx, key, board, service.ttl); err != nil {
			// Serving the fresh result matters more than caching it.
			service.logger.WarnContext(ctx, "leaderboard_cache_write_failed",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}

		return board, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Board), nil
}
