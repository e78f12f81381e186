// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/readalong/internal/core/book"
	"github.com/taibuivan/readalong/internal/core/progress"
	"github.com/taibuivan/readalong/internal/platform/apperr"
	"github.com/taibuivan/readalong/pkg/pointer"
)

/*
TestClassify verifies the closed-interval verdict boundaries.
*/
func TestClassify(t *testing.T) {
	const (
		start = 100
		end   = 200
	)

	testCases := []struct {
		name     string
		position int
		want     progress.Verdict
	}{
		{name: "just below the start bound", position: start - 1, want: progress.VerdictBehind},
		{name: "exactly on the start bound", position: start, want: progress.VerdictOnTrack},
		{name: "inside the range", position: 150, want: progress.VerdictOnTrack},
		{name: "exactly on the end bound", position: end, want: progress.VerdictOnTrack},
		{name: "just past the end bound", position: end + 1, want: progress.VerdictAhead},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, progress.Classify(testCase.position, start, end))
		})
	}
}

/*
TestPercentage verifies the unclamped ratio math and the zero-total defect.
*/
func TestPercentage(t *testing.T) {
	t.Run("simple ratio", func(t *testing.T) {
		percent, err := progress.Percentage(150, 300)
		require.NoError(t, err)
		assert.InDelta(t, 50.0, percent, 0.0001)
	})

	t.Run("past the final page exceeds one hundred", func(t *testing.T) {
		percent, err := progress.Percentage(330, 300)
		require.NoError(t, err)
		assert.InDelta(t, 110.0, percent, 0.0001)
		assert.True(t, progress.IsFinished(percent))
	})

	t.Run("exactly the final page is finished", func(t *testing.T) {
		percent, err := progress.Percentage(300, 300)
		require.NoError(t, err)
		assert.True(t, progress.IsFinished(percent))
	})

	t.Run("one short of the final page is not finished", func(t *testing.T) {
		percent, err := progress.Percentage(299, 300)
		require.NoError(t, err)
		assert.False(t, progress.IsFinished(percent))
	})

	t.Run("zero total is a data-integrity defect", func(t *testing.T) {
		_, err := progress.Percentage(150, 0)
		require.Error(t, err)

		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "DATA_INTEGRITY", appError.Code)
	})
}

/*
TestStatusLabel verifies verdict display, including the unknown case.
*/
func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Behind Schedule", progress.StatusLabel(pointer.To(progress.VerdictBehind)))
	assert.Equal(t, "On Track", progress.StatusLabel(pointer.To(progress.VerdictOnTrack)))
	assert.Equal(t, "Ahead of Schedule", progress.StatusLabel(pointer.To(progress.VerdictAhead)))

	// A missing verdict is not an error state for the reader.
	assert.Equal(t, "On Track", progress.StatusLabel(nil))
}

/*
TestEntryPosition verifies unit selection: a non-zero page wins, otherwise the
location is used with the matching extent.
*/
func TestEntryPosition(t *testing.T) {
	b := &book.Book{Slug: "infinite-summer", Pages: 300, Locations: 4500}

	t.Run("page preferred", func(t *testing.T) {
		e := &progress.Entry{Page: pointer.To(150), Location: pointer.To(2250)}
		position, total := e.Position(b)
		assert.Equal(t, 150, position)
		assert.Equal(t, 300, total)
	})

	t.Run("location fallback", func(t *testing.T) {
		e := &progress.Entry{Location: pointer.To(2250)}
		position, total := e.Position(b)
		assert.Equal(t, 2250, position)
		assert.Equal(t, 4500, total)
	})
}

/*
TestEntryVerdictFor verifies that the entry's reporting unit picks the
matching deadline bounds, and that a nil deadline yields no verdict.
*/
func TestEntryVerdictFor(t *testing.T) {
	deadline := &book.Deadline{
		StartPage:     100,
		EndPage:       200,
		StartLocation: 1500,
		EndLocation:   3000,
	}

	t.Run("page entry against page bounds", func(t *testing.T) {
		e := &progress.Entry{Page: pointer.To(250)}
		verdict := e.VerdictFor(deadline)
		require.NotNil(t, verdict)
		assert.Equal(t, progress.VerdictAhead, *verdict)
	})

	t.Run("location entry against location bounds", func(t *testing.T) {
		e := &progress.Entry{Location: pointer.To(1000)}
		verdict := e.VerdictFor(deadline)
		require.NotNil(t, verdict)
		assert.Equal(t, progress.VerdictBehind, *verdict)
	})

	t.Run("elapsed schedule yields no verdict", func(t *testing.T) {
		e := &progress.Entry{Page: pointer.To(250)}
		assert.Nil(t, e.VerdictFor(nil))
	})
}

/*
TestRelative verifies the fraction display in the reported unit.
*/
func TestRelative(t *testing.T) {
	b := &book.Book{Pages: 300, Locations: 4500}

	assert.Equal(t, "150/300", progress.Relative(&progress.Entry{Page: pointer.To(150)}, b))
	assert.Equal(t, "2250/4500", progress.Relative(&progress.Entry{Location: pointer.To(2250)}, b))
	assert.Equal(t, "0/300", progress.Relative(nil, b))
}
