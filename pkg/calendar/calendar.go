// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package calendar provides date-interval helpers for temporal windowing.
//
// # Week Convention
//
// Readalong weeks start on Monday. "This week" relative to a reference day is
// the closed date interval [most-recent-Monday, reference-day]: on a Monday it
// is a single day, on a Sunday it spans seven. The interval is computed with
// calendar arithmetic from an explicit reference time, never from mutable
// state or the ambient clock, so callers control "today" in tests.
package calendar

import "time"

// Interval is a closed range of calendar days. Start and End are normalized
// to midnight UTC and both bounds are inclusive.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DateOf truncates a timestamp to its calendar day (midnight UTC).
func DateOf(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ThisWeek returns the Monday-anchored week interval containing the reference
// time: [most recent Monday, reference day].
func ThisWeek(reference time.Time) Interval {
	day := DateOf(reference)

	// time.Weekday numbers Sunday as 0; shift so Monday is 0.
	daysSinceMonday := (int(day.Weekday()) + 6) % 7

	return Interval{
		Start: day.AddDate(0, 0, -daysSinceMonday),
		End:   day,
	}
}

// Contains reports whether the given time's calendar day falls inside the
// interval (inclusive on both ends).
func (i Interval) Contains(t time.Time) bool {
	day := DateOf(t)
	return !day.Before(i.Start) && !day.After(i.End)
}

// Days returns the number of calendar days in the interval.
func (i Interval) Days() int {
	return int(i.End.Sub(i.Start).Hours()/24) + 1
}

// SameDay reports whether two timestamps fall on the same calendar day (UTC).
func SameDay(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}
