// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress

import (
	"time"

	"github.com/taibuivan/readalong/internal/core/book"
	"github.com/taibuivan/readalong/pkg/pointer"
)

// Entry is one immutable record in a reader's progress ledger.
//
// Entries are append-only: corrections are made by submitting a newer entry,
// never by editing history. Page and Location are both optional but at least
// one must be present; Verdict is the judgement stamped at submission time
// and is nil when no deadline was in effect.
type Entry struct {
	ID       int64    `json:"id"`
	BookSlug string   `json:"book_slug"`
	Reader   string   `json:"-"`
	Page     *int     `json:"page,omitempty"`
	Location *int     `json:"location,omitempty"`
	Verdict  *Verdict `json:"verdict,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Position resolves the entry's reported position and the matching book
// extent.
//
// A present, non-zero page wins over a location; the total is chosen from the
// same unit so the ratio is meaningful.
func (e *Entry) Position(b *book.Book) (position, total int) {
	if pointer.Val(e.Page) != 0 {
		return pointer.Val(e.Page), b.Pages
	}
	return pointer.Val(e.Location), b.Locations
}

// VerdictFor judges the entry against a deadline's position range, using the
// bounds that match the entry's reporting unit.
//
// A nil deadline (the schedule has fully elapsed) yields a nil verdict.
func (e *Entry) VerdictFor(d *book.Deadline) *Verdict {
	if d == nil {
		return nil
	}

	var v Verdict
	if pointer.Val(e.Page) != 0 {
		v = Classify(pointer.Val(e.Page), d.StartPage, d.EndPage)
	} else {
		v = Classify(pointer.Val(e.Location), d.StartLocation, d.EndLocation)
	}

	return &v
}
