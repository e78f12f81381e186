// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package leaderboard_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/readalong/internal/core/leaderboard"
	"github.com/taibuivan/readalong/pkg/calendar"
)

type fakeSource struct {
	ranked   []leaderboard.RankedReader
	finished []leaderboard.RankedReader
	today    int

	rankedCalls int
}

func (f *fakeSource) RankedByPercent(_ context.Context, _ string, limit int, ascending bool, _ *calendar.Interval) ([]leaderboard.RankedReader, error) {
	f.rankedCalls++

	out := make([]leaderboard.RankedReader, len(f.ranked))
	copy(out, f.ranked)
	if ascending {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeSource) Finished(_ context.Context, _ string) ([]leaderboard.RankedReader, error) {
	return f.finished, nil
}

func (f *fakeSource) CountReadersOn(_ context.Context, _ string, _ time.Time) (int, error) {
	return f.today, nil
}

// fakeCache mimics the JSON round trip of the Redis cache but never expires.
type fakeCache struct {
	data map[string][]byte
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if f.data == nil {
		f.data = make(map[string][]byte)
	}
	f.data[key] = raw
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ranked(pairs ...any) []leaderboard.RankedReader {
	var out []leaderboard.RankedReader
	for i := 0; i < len(pairs); i += 2 {
		reader := pairs[i].(string)
		out = append(out, leaderboard.RankedReader{
			Reader:  reader,
			Name:    leaderboard.DisplayName(reader),
			Percent: pairs[i+1].(float64),
		})
	}
	return out
}

/*
TestTopReaders verifies assembly of the top board: ordering preserved from the
source, display names derived from emails, chart URL rendered.
*/
func TestTopReaders(t *testing.T) {
	source := &fakeSource{
		ranked: ranked("hal@example.com", 87.5, "orin@example.com", 62.0, "mario@example.com", 31.2),
	}
	service := leaderboard.NewService(source, &fakeCache{}, time.Hour, testLogger())

	board, err := service.TopReaders(context.Background(), "infinite-summer")
	require.NoError(t, err)

	assert.Equal(t, leaderboard.VariantTop, board.Variant)
	require.Len(t, board.Readers, 3)
	assert.Equal(t, "hal", board.Readers[0].Name)
	assert.InDelta(t, 87.5, board.Readers[0].Percent, 0.0001)
	assert.NotEmpty(t, board.ChartURL)
}

/*
TestBoardCaching verifies TTL-only invalidation: once a board is cached, new
source data does not appear until the cache entry expires.
*/
func TestBoardCaching(t *testing.T) {
	source := &fakeSource{
		ranked: ranked("hal@example.com", 87.5),
	}
	cache := &fakeCache{}
	service := leaderboard.NewService(source, cache, time.Hour, testLogger())

	first, err := service.TopReaders(context.Background(), "infinite-summer")
	require.NoError(t, err)
	require.Len(t, first.Readers, 1)
	assert.Equal(t, 1, source.rankedCalls)

	// New progress lands in the source; the cached board must not see it.
	source.ranked = ranked("hal@example.com", 95.0, "orin@example.com", 40.0)

	second, err := service.TopReaders(context.Background(), "infinite-summer")
	require.NoError(t, err)
	require.Len(t, second.Readers, 1)
	assert.InDelta(t, 87.5, second.Readers[0].Percent, 0.0001)
	assert.Equal(t, 1, source.rankedCalls)

	// Expiry is simulated by clearing the entry; the next read recomputes.
	cache.data = nil

	third, err := service.TopReaders(context.Background(), "infinite-summer")
	require.NoError(t, err)
	require.Len(t, third.Readers, 2)
	assert.Equal(t, 2, source.rankedCalls)
}

/*
TestBoardVariantsAreCachedSeparately verifies that each ranked view has its
own cache line.
*/
func TestBoardVariantsAreCachedSeparately(t *testing.T) {
	source := &fakeSource{
		ranked: ranked("hal@example.com", 87.5, "orin@example.com", 62.0),
	}
	cache := &fakeCache{}
	service := leaderboard.NewService(source, cache, time.Hour, testLogger())

	top, err := service.TopReaders(context.Background(), "infinite-summer")
	require.NoError(t, err)
	bottom, err := service.BottomReaders(context.Background(), "infinite-summer")
	require.NoError(t, err)

	assert.Equal(t, "hal", top.Readers[0].Name)
	assert.Equal(t, "orin", bottom.Readers[0].Name)
	assert.Len(t, cache.data, 2)
}

/*
TestFinishedReaders verifies the honor-roll view is unbounded and preserves
the source's percentage-then-time ordering.
*/
func TestFinishedReaders(t *testing.T) {
	source := &fakeSource{
		finished: ranked(
			"a@example.com", 100.0,
			"b@example.com", 100.0,
			"c@example.com", 100.0,
			"d@example.com", 100.0,
			"e@example.com", 100.0,
			"f@example.com", 100.0,
			"g@example.com", 100.0,
			"h@example.com", 100.0,
			"i@example.com", 100.0,
			"j@example.com", 101.0,
			"k@example.com", 103.0,
			"l@example.com", 110.0,
		),
	}
	service := leaderboard.NewService(source, &fakeCache{}, time.Hour, testLogger())

	board, err := service.FinishedReaders(context.Background(), "infinite-summer")
	require.NoError(t, err)

	require.Len(t, board.Readers, 12)
	assert.Equal(t, "a", board.Readers[0].Name)
	assert.Equal(t, "l", board.Readers[11].Name)
}

/*
TestReadersToday verifies the live count bypasses the cache.
*/
func TestReadersToday(t *testing.T) {
	source := &fakeSource{today: 7}
	cache := &fakeCache{}
	service := leaderboard.NewService(source, cache, time.Hour, testLogger())

	count, err := service.ReadersToday(context.Background(), "infinite-summer")
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	source.today = 8
	count, err = service.ReadersToday(context.Background(), "infinite-summer")
	require.NoError(t, err)
	assert.Equal(t, 8, count)
	assert.Empty(t, cache.data)
}

/*
TestDisplayName verifies identity-to-name derivation.
*/
func TestDisplayName(t *testing.T) {
	assert.Equal(t, "orin", leaderboard.DisplayName("orin@example.com"))
	assert.Equal(t, "plainname", leaderboard.DisplayName("plainname"))
}
