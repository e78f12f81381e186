// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import "context"

// Repository defines the persistence contract for books and their deadlines.
type Repository interface {
	CreateBook(ctx context.Context, b *Book) error
	GetBookBySlug(ctx context.Context, slug string) (*Book, error)
	ListBooks(ctx context.Context, limit, offset int) ([]*Book, int, error)

	CreateDeadline(ctx context.Context, d *Deadline) error
	// ListDeadlinesByBook returns the book's full schedule ordered by end date.
	ListDeadlinesByBook(ctx context.Context, slug string) ([]Deadline, error)
}
