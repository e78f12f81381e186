// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/readalong/internal/core/book"
	"github.com/taibuivan/readalong/internal/platform/dberr"
	"github.com/taibuivan/readalong/internal/platform/validate"
	"github.com/taibuivan/readalong/pkg/calendar"
	"github.com/taibuivan/readalong/pkg/pointer"
)

// BookProvider is the slice of the catalogue the progress core needs: book
// extents for percentage math and the deadline in effect for verdicts.
type BookProvider interface {
	GetBook(ctx context.Context, bookSlug string) (*book.Book, error)
	CurrentDeadline(ctx context.Context, bookSlug string, reference time.Time) (*book.Deadline, error)
}

type Service struct {
	books     BookProvider
	entries   EntryRepository
	snapshots SnapshotRepository
	logger    *slog.Logger

	// now is the clock used for entry timestamps; injectable for tests.
	now func() time.Time

	// locks serializes snapshot upserts per (book, reader) pair so two
	// concurrent submissions cannot interleave read-modify-write.
	locks keyedMutex
}

func NewService(books BookProvider, entries EntryRepository, snapshots SnapshotRepository, logger *slog.Logger) *Service {
	return &Service{
		books:     books,
		entries:   entries,
		snapshots: snapshots,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock overrides the service clock. Intended for tests.
func (service *Service) WithClock(now func() time.Time) *Service {
	service.now = now
	return service
}

// SubmitEntryInput is a reader's progress report. At least one of Page or
// Location must be present.
type SubmitEntryInput struct {
	Page     *int `json:"page"`
	Location *int `json:"location"`
}

// SubmitEntry appends a ledger entry and refreshes the reader's snapshot.
//
// The verdict is stamped at submission time against the deadline currently in
// effect; it is never revised when the schedule later changes. The entry
// insert and the snapshot upsert are two writes: if the second fails the
// ledger still holds the truth, the inconsistency is logged, and a later
// submission or an administrative recompute repairs the snapshot.
func (service *Service) SubmitEntry(ctx context.Context, bookSlug, reader string, input SubmitEntryInput) (*Entry, error) {
	if pointer.Val(input.Page) == 0 && pointer.Val(input.Location) == 0 {
		return nil, validate.RequiredError("page", "Please specify a page or location.")
	}

	v := &validate.Validator{}
	if err := v.
		Custom("page", pointer.Val(input.Page) < 0, "Must not be negative").
		Custom("location", pointer.Val(input.Location) < 0, "Must not be negative").
		Err(); err != nil {
		return nil, err
	}

	// A zero value means "not reported"; store it as absent so the ledger
	// never records a page or location of zero.
	page := input.Page
	if pointer.Val(page) == 0 {
		page = nil
	}
	location := input.Location
	if pointer.Val(location) == 0 {
		location = nil
	}

	b, err := service.books.GetBook(ctx, bookSlug)
	if err != nil {
		return nil, err
	}

	submittedAt := service.now().UTC()

	deadline, err := service.books.CurrentDeadline(ctx, bookSlug, submittedAt)
	if err != nil {
		return nil, err
	}

	entry := &Entry{
		BookSlug:  b.Slug,
		Reader:    reader,
		Page:      page,
		Location:  location,
		Verdict:   nil,
		CreatedAt: submittedAt,
	}
	entry.Verdict = entry.VerdictFor(deadline)

	position, total := entry.Position(b)
	percent, err := Percentage(position, total)
	if err != nil {
		return nil, err
	}

	if err := service.entries.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		BookSlug:    b.Slug,
		Reader:      reader,
		LastEntryID: entry.ID,
		Percent:     percent,
		UpdatedAt:   entry.CreatedAt,
		UpdatedOn:   calendar.DateOf(entry.CreatedAt),
	}

	unlock := service.locks.lock(b.Slug + "\x00" + reader)
	err = service.snapshots.UpsertSnapshot(ctx, snapshot)
	unlock()

	if err != nil {
		service.logger.ErrorContext(ctx, "entry_persisted_without_snapshot",
			slog.String("book", b.Slug),
			slog.Int64("entry_id", entry.ID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	service.logger.Info("entry_recorded",
		slog.String("book", b.Slug),
		slog.Int64("entry_id", entry.ID),
		slog.Float64("percent", percent),
	)

	return entry, nil
}

// EntriesForReader returns a reader's full ledger in chronological order.
func (service *Service) EntriesForReader(ctx context.Context, bookSlug, reader string) ([]*Entry, error) {
	if _, err := service.books.GetBook(ctx, bookSlug); err != nil {
		return nil, err
	}
	return service.entries.ListEntriesByReader(ctx, bookSlug, reader)
}

// RecentEntries returns the reader's newest entries, newest first.
func (service *Service) RecentEntries(ctx context.Context, bookSlug, reader string, limit int) ([]*Entry, error) {
	return service.entries.ListRecentEntriesByReader(ctx, bookSlug, reader, limit)
}

// View is the reader-facing summary of where they stand in a book.
type View struct {
	Percent   float64    `json:"percent"`
	Relative  string     `json:"relative"`
	Status    string     `json:"status"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// GetProgress assembles the current progress view for a (book, reader) pair.
//
// A reader with no snapshot yet is reported at zero with a "Behind Schedule"
// status rather than a lookup error.
func (service *Service) GetProgress(ctx context.Context, bookSlug, reader string) (*View, error) {
	b, err := service.books.GetBook(ctx, bookSlug)
	if err != nil {
		return nil, err
	}

	snapshot, err := service.snapshots.GetSnapshot(ctx, bookSlug, reader)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return &View{
				Percent:  0,
				Relative: Relative(nil, b),
				Status:   VerdictBehind.Label(),
			}, nil
		}
		return nil, err
	}

	entry, err := service.entries.GetEntry(ctx, snapshot.LastEntryID)
	if err != nil {
		return nil, err
	}

	updatedAt := snapshot.UpdatedAt
	return &View{
		Percent:   snapshot.Percent,
		Relative:  Relative(entry, b),
		Status:    StatusLabel(entry.Verdict),
		UpdatedAt: &updatedAt,
	}, nil
}

// RecomputeSnapshot rebuilds a reader's snapshot from their latest ledger
// entry. Administrative repair tool for the rare entry-without-snapshot gap.
//
// Timestamps come from the entry, not the wall clock, so a repair does not
// make stale progress look fresh in day- and week-scoped leaderboards.
func (service *Service) RecomputeSnapshot(ctx context.Context, bookSlug, reader string) (*Snapshot, error) {
	b, err := service.books.GetBook(ctx, bookSlug)
	if err != nil {
		return nil, err
	}

	entry, err := service.entries.LatestEntryByReader(ctx, bookSlug, reader)
	if err != nil {
		return nil, err
	}

	position, total := entry.Position(b)
	percent, err := Percentage(position, total)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		BookSlug:    b.Slug,
		Reader:      reader,
		LastEntryID: entry.ID,
		Percent:     percent,
		UpdatedAt:   entry.CreatedAt,
		UpdatedOn:   calendar.DateOf(entry.CreatedAt),
	}

	unlock := service.locks.lock(b.Slug + "\x00" + reader)
	err = service.snapshots.UpsertSnapshot(ctx, snapshot)
	unlock()
	if err != nil {
		return nil, err
	}

	service.logger.Info("snapshot_recomputed",
		slog.String("book", b.Slug),
		slog.Int64("entry_id", entry.ID),
		slog.Float64("percent", percent),
	)

	return snapshot, nil
}

// keyedMutex hands out a mutex per string key, dropping the key once no
// goroutine holds or awaits it.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

func (km *keyedMutex) lock(key string) (unlock func()) {
	km.mu.Lock()
	if km.locks == nil {
		km.locks = make(map[string]*keyedLock)
	}
	l, ok := km.locks[key]
	if !ok {
		l = &keyedLock{}
		km.locks[key] = l
	}
	l.refs++
	km.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		km.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(km.locks, key)
		}
		km.mu.Unlock()
	}
}
