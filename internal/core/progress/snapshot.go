// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress

import (
	"fmt"
	"time"

	"github.com/taibuivan/readalong/internal/core/book"
	"github.com/taibuivan/readalong/pkg/pointer"
)

// Snapshot is the single current-state row kept per (book, reader) pair.
//
// It is a derived summary of the ledger, overwritten on every accepted entry.
// UpdatedOn is the calendar day of UpdatedAt and exists so day- and week-based
// queries never have to truncate timestamps in SQL.
type Snapshot struct {
	BookSlug    string    `json:"book_slug"`
	Reader      string    `json:"-"`
	LastEntryID int64     `json:"last_entry_id"`
	Percent     float64   `json:"percent"`
	UpdatedAt   time.Time `json:"updated_at"`
	UpdatedOn   time.Time `json:"-"`
}

// Relative renders an entry's position as a human-readable fraction of the
// book's extent, in the unit the reader reported.
//
// A nil entry (the reader has not logged anything yet) renders as zero pages
// so the display always has a meaningful denominator.
func Relative(e *Entry, b *book.Book) string {
	if e == nil {
		return fmt.Sprintf("0/%d", b.Pages)
	}
	if pointer.Val(e.Page) != 0 {
		return fmt.Sprintf("%d/%d", pointer.Val(e.Page), b.Pages)
	}
	return fmt.Sprintf("%d/%d", pointer.Val(e.Location), b.Locations)
}
