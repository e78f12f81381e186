// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/readalong/internal/platform/validate"
	"github.com/taibuivan/readalong/pkg/slug"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateBookInput is the administrative payload for registering a new title.
type CreateBookInput struct {
	Title     string `json:"title"`
	Pages     int    `json:"pages"`
	Locations int    `json:"locations"`
}

// CreateBook registers a new title and derives its permanent slug.
//
// Pages and locations must be positive: a zero extent would make every
// percentage computation downstream undefined.
func (service *Service) CreateBook(ctx context.Context, input CreateBookInput) (*Book, error) {
	v := &validate.Validator{}
	if err := v.
		Required("title", input.Title).
		MaxLen("title", input.Title, 200).
		Positive("pages", input.Pages).
		Positive("locations", input.Locations).
		Err(); err != nil {
		return nil, err
	}

	bookSlug := slug.From(input.Title)
	if bookSlug == "" {
		return nil, validate.RequiredError("title", "Title must contain at least one letter or digit")
	}

	b := &Book{
		Slug:      bookSlug,
		Title:     input.Title,
		Pages:     input.Pages,
		Locations: input.Locations,
	}

	if err := service.repo.CreateBook(ctx, b); err != nil {
		return nil, err
	}

	service.logger.Info("book_created",
		slog.String("slug", b.Slug),
		slog.Int("pages", b.Pages),
		slog.Int("locations", b.Locations),
	)

	return b, nil
}

func (service *Service) GetBook(ctx context.Context, bookSlug string) (*Book, error) {
	return service.repo.GetBookBySlug(ctx, bookSlug)
}

func (service *Service) ListBooks(ctx context.Context, limit, offset int) ([]*Book, int, error) {
	return service.repo.ListBooks(ctx, limit, offset)
}

// CreateDeadlineInput is the administrative payload for one schedule interval.
type CreateDeadlineInput struct {
	StartsOn      time.Time `json:"starts_on"`
	EndsOn        time.Time `json:"ends_on"`
	StartPage     int       `json:"start_page"`
	StartLocation int       `json:"start_location"`
	EndPage       int       `json:"end_page"`
	EndLocation   int       `json:"end_location"`
}

// CreateDeadline appends an interval to the book's reading schedule.
func (service *Service) CreateDeadline(ctx context.Context, bookSlug string, input CreateDeadlineInput) (*Deadline, error) {
	// The book must exist before a schedule can be attached to it.
	b, err := service.repo.GetBookBySlug(ctx, bookSlug)
	if err != nil {
		return nil, err
	}

	v := &validate.Validator{}
	if err := v.
		DateOrder("starts_on", input.StartsOn, input.EndsOn).
		Positive("end_page", input.EndPage).
		Positive("end_location", input.EndLocation).
		Custom("start_page", input.StartPage < 0, "Must not be negative").
		Custom("start_location", input.StartLocation < 0, "Must not be negative").
		Custom("end_page", input.EndPage < input.StartPage, "Must not be before start_page").
		Custom("end_location", input.EndLocation < input.StartLocation, "Must not be before start_location").
		Err(); err != nil {
		return nil, err
	}

	d := &Deadline{
		BookSlug:      b.Slug,
		StartsOn:      input.StartsOn,
		EndsOn:        input.EndsOn,
		StartPage:     input.StartPage,
		StartLocation: input.StartLocation,
		EndPage:       input.EndPage,
		EndLocation:   input.EndLocation,
	}

	if err := service.repo.CreateDeadline(ctx, d); err != nil {
		return nil, err
	}

	service.logger.Info("deadline_created",
		slog.String("book", b.Slug),
		slog.Time("ends_on", d.EndsOn),
		slog.Int("end_page", d.EndPage),
	)

	return d, nil
}

// ListDeadlines returns the book's schedule ordered by end date.
func (service *Service) ListDeadlines(ctx context.Context, bookSlug string) ([]Deadline, error) {
	if _, err := service.repo.GetBookBySlug(ctx, bookSlug); err != nil {
		return nil, err
	}
	return service.repo.ListDeadlinesByBook(ctx, bookSlug)
}

// CurrentDeadline resolves the deadline in effect at the reference time.
//
// A nil deadline with a nil error means the schedule has fully elapsed;
// callers decide whether that is a 404 (HTTP) or an unknown verdict (ledger).
func (service *Service) CurrentDeadline(ctx context.Context, bookSlug string, reference time.Time) (*Deadline, error) {
	deadlines, err := service.repo.ListDeadlinesByBook(ctx, bookSlug)
	if err != nil {
		return nil, err
	}
	return CurrentDeadline(deadlines, reference), nil
}
