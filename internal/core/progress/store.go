// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress

import "context"

// EntryRepository defines the persistence contract for the append-only ledger.
//
// There is deliberately no update or delete: history is immutable.
type EntryRepository interface {
	CreateEntry(ctx context.Context, e *Entry) error
	GetEntry(ctx context.Context, id int64) (*Entry, error)
	// ListEntriesByReader returns a reader's full ledger for a book in
	// chronological order.
	ListEntriesByReader(ctx context.Context, bookSlug, reader string) ([]*Entry, error)
	// ListRecentEntriesByReader returns the newest entries first, capped at limit.
	ListRecentEntriesByReader(ctx context.Context, bookSlug, reader string, limit int) ([]*Entry, error)
	// LatestEntryByReader returns the most recent entry, or ErrNotFound.
	LatestEntryByReader(ctx context.Context, bookSlug, reader string) (*Entry, error)
}

// SnapshotRepository defines the persistence contract for per-reader
// current-state rows.
type SnapshotRepository interface {
	// UpsertSnapshot inserts or overwrites the (book, reader) row.
	UpsertSnapshot(ctx context.Context, s *Snapshot) error
	// GetSnapshot returns the row for a (book, reader) pair, or ErrNotFound.
	GetSnapshot(ctx context.Context, bookSlug, reader string) (*Snapshot, error)
}
