// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/readalong/pkg/calendar"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

/*
TestThisWeek verifies the Monday-anchored week window for each weekday.
*/
func TestThisWeek(t *testing.T) {
	tests := []struct {
		name      string
		reference time.Time
		start     time.Time
		days      int
	}{
		// 2026-06-01 is a Monday
		{"monday_is_single_day", date(2026, 6, 1), date(2026, 6, 1), 1},
		{"wednesday", date(2026, 6, 3), date(2026, 6, 1), 3},
		{"sunday_spans_full_week", date(2026, 6, 7), date(2026, 6, 1), 7},
		{"next_monday_resets", date(2026, 6, 8), date(2026, 6, 8), 1},
		{"month_boundary", date(2026, 7, 1), date(2026, 6, 29), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week := calendar.ThisWeek(tt.reference)

			assert.Equal(t, tt.start, week.Start)
			assert.Equal(t, calendar.DateOf(tt.reference), week.End)
			assert.Equal(t, tt.days, week.Days())
		})
	}
}

/*
TestThisWeek_TimeOfDayIgnored verifies that the clock time of the reference
does not change the window.
*/
func TestThisWeek_TimeOfDayIgnored(t *testing.T) {
	morning := time.Date(2026, 6, 3, 7, 15, 0, 0, time.UTC)
	night := time.Date(2026, 6, 3, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, calendar.ThisWeek(morning), calendar.ThisWeek(night))
}

/*
TestInterval_Contains checks inclusive boundary behavior.
*/
func TestInterval_Contains(t *testing.T) {
	week := calendar.ThisWeek(date(2026, 6, 5)) // Friday → [Jun 1, Jun 5]

	assert.True(t, week.Contains(date(2026, 6, 1)))
	assert.True(t, week.Contains(date(2026, 6, 5)))
	assert.True(t, week.Contains(time.Date(2026, 6, 3, 18, 0, 0, 0, time.UTC)))
	assert.False(t, week.Contains(date(2026, 5, 31)))
	assert.False(t, week.Contains(date(2026, 6, 6)))
}

/*
TestSameDay checks calendar-day equality across clock times.
*/
func TestSameDay(t *testing.T) {
	assert.True(t, calendar.SameDay(
		time.Date(2026, 6, 3, 0, 0, 1, 0, time.UTC),
		time.Date(2026, 6, 3, 23, 0, 0, 0, time.UTC),
	))
	assert.False(t, calendar.SameDay(date(2026, 6, 3), date(2026, 6, 4)))
}
