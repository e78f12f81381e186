// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package book defines the reading catalogue: the books a club tracks and the
rolling deadline schedule attached to each of them.

A book's extent is expressed twice — in print pages and in e-reader location
units — because readers report whichever their edition shows. The slug derived
from the title at creation time is the book's permanent identity.
*/
package book

import (
	"fmt"
	"time"

	"github.com/taibuivan/readalong/pkg/calendar"
)

// Book represents one tracked reading-group title.
type Book struct {
	// Slug is derived deterministically from the title and is immutable.
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Pages     int       `json:"pages"`
	Locations int       `json:"locations"`
	CreatedAt time.Time `json:"-"`
}

// String implements fmt.Stringer.
func (b *Book) String() string { return b.Title }

// Deadline is one interval of a book's reading schedule: a date range paired
// with the position range readers are expected to cover inside it.
//
// Ordered by end date, a book's deadlines partition the schedule into
// sequential intervals. Start and end positions carry both units so that a
// reported page or location can be judged against matching bounds.
type Deadline struct {
	ID       int64     `json:"id"`
	BookSlug string    `json:"book_slug"`
	StartsOn time.Time `json:"starts_on"`
	EndsOn   time.Time `json:"ends_on"`

	StartPage     int `json:"start_page"`
	StartLocation int `json:"start_location"`
	EndPage       int `json:"end_page"`
	EndLocation   int `json:"end_location"`
}

// String implements fmt.Stringer.
func (d *Deadline) String() string {
	return fmt.Sprintf("Page %d by %s", d.EndPage, d.EndsOn.Format("January 2, 2006"))
}

// CurrentDeadline selects the deadline in effect relative to a reference time:
// the one with the earliest end date that has not yet elapsed.
//
// It returns nil when every deadline has already passed — the schedule is over
// and callers must treat verdicts as unknown rather than erroring. The
// reference time is an explicit parameter so tests never need to touch the
// ambient clock.
func CurrentDeadline(deadlines []Deadline, reference time.Time) *Deadline {
	referenceDay := calendar.DateOf(reference)

	var current *Deadline
	for i := range deadlines {
		candidate := &deadlines[i]
		if candidate.EndsOn.Before(referenceDay) {
			continue
		}
		if current == nil || candidate.EndsOn.Before(current.EndsOn) {
			current = candidate
		}
	}

	return current
}
