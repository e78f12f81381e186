// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/readalong/internal/core/book"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

/*
TestCurrentDeadline verifies the selection rule: the deadline with the
earliest end date that has not yet elapsed.
*/
func TestCurrentDeadline(t *testing.T) {
	schedule := []book.Deadline{
		{ID: 1, EndsOn: day(2026, time.January, 10), EndPage: 100},
		{ID: 2, EndsOn: day(2026, time.January, 20), EndPage: 200},
		{ID: 3, EndsOn: day(2026, time.January, 31), EndPage: 300},
	}

	testCases := []struct {
		name      string
		reference time.Time
		wantID    int64
	}{
		{
			name:      "before the first deadline",
			reference: day(2026, time.January, 5),
			wantID:    1,
		},
		{
			name:      "on the first end date it is still current",
			reference: day(2026, time.January, 10),
			wantID:    1,
		},
		{
			name:      "between first and second",
			reference: day(2026, time.January, 15),
			wantID:    2,
		},
		{
			name:      "time-of-day does not push past an end date",
			reference: time.Date(2026, time.January, 20, 23, 59, 0, 0, time.UTC),
			wantID:    2,
		},
		{
			name:      "last interval",
			reference: day(2026, time.January, 25),
			wantID:    3,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			current := book.CurrentDeadline(schedule, testCase.reference)
			require.NotNil(t, current)
			assert.Equal(t, testCase.wantID, current.ID)
		})
	}
}

/*
TestCurrentDeadline_Elapsed verifies that a fully elapsed schedule yields nil
instead of an error.
*/
func TestCurrentDeadline_Elapsed(t *testing.T) {
	schedule := []book.Deadline{
		{ID: 1, EndsOn: day(2026, time.January, 10)},
		{ID: 2, EndsOn: day(2026, time.January, 20)},
	}

	assert.Nil(t, book.CurrentDeadline(schedule, day(2026, time.February, 1)))
	assert.Nil(t, book.CurrentDeadline(nil, day(2026, time.February, 1)))
}

/*
TestCurrentDeadline_UnorderedInput verifies that selection does not depend on
the storage ordering of the schedule.
*/
func TestCurrentDeadline_UnorderedInput(t *testing.T) {
	schedule := []book.Deadline{
		{ID: 3, EndsOn: day(2026, time.January, 31)},
		{ID: 1, EndsOn: day(2026, time.January, 10)},
		{ID: 2, EndsOn: day(2026, time.January, 20)},
	}

	current := book.CurrentDeadline(schedule, day(2026, time.January, 15))
	require.NotNil(t, current)
	assert.Equal(t, int64(2), current.ID)
}

/*
TestDeadlineString verifies the human-readable deadline description.
*/
func TestDeadlineString(t *testing.T) {
	d := &book.Deadline{
		EndPage: 150,
		EndsOn:  day(2026, time.June, 14),
	}

	assert.Equal(t, "Page 150 by June 14, 2026", d.String())
}
