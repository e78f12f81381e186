// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/readalong/internal/core/book"
	"github.com/taibuivan/readalong/internal/core/progress"
	"github.com/taibuivan/readalong/internal/platform/dberr"
	"github.com/taibuivan/readalong/pkg/pointer"
)

type fakeCatalogue struct {
	book     *book.Book
	deadline *book.Deadline
}

func (f *fakeCatalogue) GetBook(_ context.Context, _ string) (*book.Book, error) {
	return f.book, nil
}

func (f *fakeCatalogue) CurrentDeadline(_ context.Context, _ string, _ time.Time) (*book.Deadline, error) {
	return f.deadline, nil
}

type fakeEntryStore struct {
	entries []*progress.Entry
	nextID  int64
}

func (f *fakeEntryStore) CreateEntry(_ context.Context, e *progress.Entry) error {
	f.nextID++
	e.ID = f.nextID
	stored := *e
	f.entries = append(f.entries, &stored)
	return nil
}

func (f *fakeEntryStore) GetEntry(_ context.Context, id int64) (*progress.Entry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeEntryStore) ListEntriesByReader(_ context.Context, bookSlug, reader string) ([]*progress.Entry, error) {
	var out []*progress.Entry
	for _, e := range f.entries {
		if e.BookSlug == bookSlug && e.Reader == reader {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntryStore) ListRecentEntriesByReader(ctx context.Context, bookSlug, reader string, limit int) ([]*progress.Entry, error) {
	all, _ := f.ListEntriesByReader(ctx, bookSlug, reader)
	var out []*progress.Entry
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}

func (f *fakeEntryStore) LatestEntryByReader(ctx context.Context, bookSlug, reader string) (*progress.Entry, error) {
	all, _ := f.ListEntriesByReader(ctx, bookSlug, reader)
	if len(all) == 0 {
		return nil, dberr.ErrNotFound
	}
	return all[len(all)-1], nil
}

type fakeSnapshotStore struct {
	snapshots map[string]*progress.Snapshot
}

func snapshotKey(bookSlug, reader string) string { return bookSlug + "/" + reader }

func (f *fakeSnapshotStore) UpsertSnapshot(_ context.Context, s *progress.Snapshot) error {
	if f.snapshots == nil {
		f.snapshots = make(map[string]*progress.Snapshot)
	}
	stored := *s
	f.snapshots[snapshotKey(s.BookSlug, s.Reader)] = &stored
	return nil
}

func (f *fakeSnapshotStore) GetSnapshot(_ context.Context, bookSlug, reader string) (*progress.Snapshot, error) {
	s, ok := f.snapshots[snapshotKey(bookSlug, reader)]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return s, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testBook() *book.Book {
	return &book.Book{Slug: "infinite-summer", Title: "Infinite Summer", Pages: 300, Locations: 4500}
}

func testDeadline() *book.Deadline {
	return &book.Deadline{
		BookSlug:      "infinite-summer",
		EndsOn:        time.Date(2026, time.June, 14, 0, 0, 0, 0, time.UTC),
		StartPage:     100,
		EndPage:       200,
		StartLocation: 1500,
		EndLocation:   3000,
	}
}

/*
TestSubmitEntry verifies the full submission path: verdict stamping, ledger
append, and snapshot refresh.
*/
func TestSubmitEntry(t *testing.T) {
	catalogue := &fakeCatalogue{book: testBook(), deadline: testDeadline()}
	entryStore := &fakeEntryStore{}
	snapshotStore := &fakeSnapshotStore{}

	submittedAt := time.Date(2026, time.June, 10, 15, 30, 0, 0, time.UTC)
	service := progress.NewService(catalogue, entryStore, snapshotStore, testLogger()).
		WithClock(func() time.Time { return submittedAt })

	entry, err := service.SubmitEntry(context.Background(), "infinite-summer", "orin@example.com", progress.SubmitEntryInput{
		Page: pointer.To(150),
	})
	require.NoError(t, err)

	require.NotNil(t, entry.Verdict)
	assert.Equal(t, progress.VerdictOnTrack, *entry.Verdict)
	assert.Equal(t, submittedAt, entry.CreatedAt)

	// The ledger holds exactly one immutable record.
	require.Len(t, entryStore.entries, 1)

	// The snapshot mirrors the new entry.
	snapshot, err := snapshotStore.GetSnapshot(context.Background(), "infinite-summer", "orin@example.com")
	require.NoError(t, err)
	assert.Equal(t, entry.ID, snapshot.LastEntryID)
	assert.InDelta(t, 50.0, snapshot.Percent, 0.0001)
	assert.Equal(t, time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC), snapshot.UpdatedOn)
}

/*
TestSubmitEntry_NoDeadline verifies that an elapsed schedule stores a nil
verdict instead of failing the submission.
*/
func TestSubmitEntry_NoDeadline(t *testing.T) {
	catalogue := &fakeCatalogue{book: testBook(), deadline: nil}
	entryStore := &fakeEntryStore{}
	snapshotStore := &fakeSnapshotStore{}

	service := progress.NewService(catalogue, entryStore, snapshotStore, testLogger())

	entry, err := service.SubmitEntry(context.Background(), "infinite-summer", "orin@example.com", progress.SubmitEntryInput{
		Location: pointer.To(2250),
	})
	require.NoError(t, err)
	assert.Nil(t, entry.Verdict)
}

/*
TestSubmitEntry_Invalid verifies that a report with neither unit is rejected
before anything is written.
*/
func TestSubmitEntry_Invalid(t *testing.T) {
	catalogue := &fakeCatalogue{book: testBook(), deadline: testDeadline()}
	entryStore := &fakeEntryStore{}
	snapshotStore := &fakeSnapshotStore{}

	service := progress.NewService(catalogue, entryStore, snapshotStore, testLogger())

	_, err := service.SubmitEntry(context.Background(), "infinite-summer", "orin@example.com", progress.SubmitEntryInput{})
	require.Error(t, err)

	assert.Empty(t, entryStore.entries)
	assert.Empty(t, snapshotStore.snapshots)
}

/*
TestSubmitEntry_ZeroPageFallsBackToLocation verifies that a zero page is
treated as absent: the location drives the verdict and the ledger stores no
page at all.
*/
func TestSubmitEntry_ZeroPageFallsBackToLocation(t *testing.T) {
	catalogue := &fakeCatalogue{book: testBook(), deadline: testDeadline()}
	entryStore := &fakeEntryStore{}
	snapshotStore := &fakeSnapshotStore{}

	service := progress.NewService(catalogue, entryStore, snapshotStore, testLogger())

	entry, err := service.SubmitEntry(context.Background(), "infinite-summer", "orin@example.com", progress.SubmitEntryInput{
		Page:     pointer.To(0),
		Location: pointer.To(2250),
	})
	require.NoError(t, err)

	assert.Nil(t, entry.Page)
	require.NotNil(t, entry.Location)
	require.NotNil(t, entry.Verdict)
	assert.Equal(t, progress.VerdictOnTrack, *entry.Verdict)

	snapshot, err := snapshotStore.GetSnapshot(context.Background(), "infinite-summer", "orin@example.com")
	require.NoError(t, err)
	assert.InDelta(t, 50.0, snapshot.Percent, 0.0001)
}

/*
TestGetProgress verifies the assembled view for a reader with history and the
zero view for a reader without any.
*/
func TestGetProgress(t *testing.T) {
	catalogue := &fakeCatalogue{book: testBook(), deadline: testDeadline()}
	entryStore := &fakeEntryStore{}
	snapshotStore := &fakeSnapshotStore{}

	service := progress.NewService(catalogue, entryStore, snapshotStore, testLogger())

	t.Run("no history yet", func(t *testing.T) {
		view, err := service.GetProgress(context.Background(), "infinite-summer", "newcomer@example.com")
		require.NoError(t, err)
		assert.Zero(t, view.Percent)
		assert.Equal(t, "0/300", view.Relative)
		assert.Equal(t, "Behind Schedule", view.Status)
		assert.Nil(t, view.UpdatedAt)
	})

	t.Run("after a submission", func(t *testing.T) {
		_, err := service.SubmitEntry(context.Background(), "infinite-summer", "orin@example.com", progress.SubmitEntryInput{
			Page: pointer.To(150),
		})
		require.NoError(t, err)

		view, err := service.GetProgress(context.Background(), "infinite-summer", "orin@example.com")
		require.NoError(t, err)
		assert.InDelta(t, 50.0, view.Percent, 0.0001)
		assert.Equal(t, "150/300", view.Relative)
		assert.Equal(t, "On Track", view.Status)
		require.NotNil(t, view.UpdatedAt)
	})
}

/*
TestRecomputeSnapshot verifies that a repair rebuilds the snapshot from the
latest ledger entry and keeps the entry's timestamps.
*/
func TestRecomputeSnapshot(t *testing.T) {
	catalogue := &fakeCatalogue{book: testBook(), deadline: testDeadline()}
	entryStore := &fakeEntryStore{}
	snapshotStore := &fakeSnapshotStore{}

	service := progress.NewService(catalogue, entryStore, snapshotStore, testLogger())

	recordedAt := time.Date(2026, time.June, 8, 9, 0, 0, 0, time.UTC)
	require.NoError(t, entryStore.CreateEntry(context.Background(), &progress.Entry{
		BookSlug:  "infinite-summer",
		Reader:    "orin@example.com",
		Page:      pointer.To(90),
		CreatedAt: recordedAt,
	}))

	snapshot, err := service.RecomputeSnapshot(context.Background(), "infinite-summer", "orin@example.com")
	require.NoError(t, err)
	assert.InDelta(t, 30.0, snapshot.Percent, 0.0001)
	assert.Equal(t, recordedAt, snapshot.UpdatedAt)
	assert.Equal(t, time.Date(2026, time.June, 8, 0, 0, 0, 0, time.UTC), snapshot.UpdatedOn)
}
