// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package dashboard composes the per-book reading dashboard: the reader's own
progress next to the club-wide ranked views, assembled in one round trip.
*/
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/readalong/internal/core/book"
	"github.com/taibuivan/readalong/internal/core/leaderboard"
	"github.com/taibuivan/readalong/internal/core/progress"
)

// recentEntryCount is how many of the reader's latest entries appear on the
// dashboard.
const recentEntryCount = 10

type Service struct {
	books        *book.Service
	progress     *progress.Service
	leaderboards *leaderboard.Service
	logger       *slog.Logger
}

func NewService(books *book.Service, progressService *progress.Service, leaderboards *leaderboard.Service, logger *slog.Logger) *Service {
	return &Service{
		books:        books,
		progress:     progressService,
		leaderboards: leaderboards,
		logger:       logger,
	}
}

// View is the complete dashboard payload for one (book, reader) pair.
type View struct {
	Book            *book.Book         `json:"book"`
	CurrentDeadline *book.Deadline     `json:"current_deadline,omitempty"`
	Progress        *progress.View     `json:"progress"`
	RecentEntries   []*progress.Entry  `json:"recent_entries"`
	TopTen          *leaderboard.Board `json:"top_ten"`
	BottomTen       *leaderboard.Board `json:"bottom_ten"`
	TopTenThisWeek  *leaderboard.Board `json:"top_ten_this_week"`
	BottomTenWeek   *leaderboard.Board `json:"bottom_ten_this_week"`
	Finishers       *leaderboard.Board `json:"finishers"`
	ReadersToday    int                `json:"readers_today"`
}

// Assemble builds the dashboard for a reader.
//
// The ranked views come through the leaderboard cache, so assembling a
// dashboard right after submitting an entry can show the pre-submission
// rankings next to the fresh personal progress. That mismatch resolves when
// the cache period rolls over.
func (service *Service) Assemble(ctx context.Context, bookSlug, reader string) (*View, error) {
	b, err := service.books.GetBook(ctx, bookSlug)
	if err != nil {
		return nil, err
	}

	deadline, err := service.books.CurrentDeadline(ctx, bookSlug, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	progressView, err := service.progress.GetProgress(ctx, bookSlug, reader)
	if err != nil {
		return nil, err
	}

	recent, err := service.progress.RecentEntries(ctx, bookSlug, reader, recentEntryCount)
	if err != nil {
		return nil, err
	}

	top, err := service.leaderboards.TopReaders(ctx, bookSlug)
	if err != nil {
		return nil, err
	}

	bottom, err := service.leaderboards.BottomReaders(ctx, bookSlug)
	if err != nil {
		return nil, err
	}

	topWeek, err := service.leaderboards.TopReadersThisWeek(ctx, bookSlug)
	if err != nil {
		return nil, err
	}

	bottomWeek, err := service.leaderboards.BottomReadersThisWeek(ctx, bookSlug)
	if err != nil {
		return nil, err
	}

	finishers, err := service.leaderboards.FinishedReaders(ctx, bookSlug)
	if err != nil {
		return nil, err
	}

	readersToday, err := service.leaderboards.ReadersToday(ctx, bookSlug)
	if err != nil {
		return nil, err
	}

	return &View{
		Book:            b,
		CurrentDeadline: deadline,
		Progress:        progressView,
		RecentEntries:   recent,
		TopTen:          top,
		BottomTen:       bottom,
		TopTenThisWeek:  topWeek,
		BottomTenWeek:   bottomWeek,
		Finishers:       finishers,
		ReadersToday:    readersToday,
	}, nil
}
