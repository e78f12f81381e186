// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/readalong/internal/platform/database/schema"
	"github.com/taibuivan/readalong/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) CreateBook(ctx context.Context, b *Book) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING %s
	`,
		schema.ClubBook.Table, schema.ClubBook.Slug, schema.ClubBook.Title,
		schema.ClubBook.Pages, schema.ClubBook.Locations, schema.ClubBook.CreatedAt,
		schema.ClubBook.CreatedAt,
	)

	err := repository.db.QueryRow(ctx, query, b.Slug, b.Title, b.Pages, b.Locations).Scan(&b.CreatedAt)
	return dberr.Wrap(err, "create_book")
}

func (repository *PostgresRepository) GetBookBySlug(ctx context.Context, slug string) (*Book, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.ClubBook.Slug, schema.ClubBook.Title, schema.ClubBook.Pages,
		schema.ClubBook.Locations, schema.ClubBook.CreatedAt,
		schema.ClubBook.Table, schema.ClubBook.Slug,
	)

	b := &Book{}
	err := repository.db.QueryRow(ctx, query, slug).Scan(
		&b.Slug, &b.Title, &b.Pages, &b.Locations, &b.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_book")
	}

	return b, nil
}

func (repository *PostgresRepository) ListBooks(ctx context.Context, limit, offset int) ([]*Book, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.ClubBook.Table)

	var total int
	if err := repository.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_books")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		schema.ClubBook.Slug, schema.ClubBook.Title, schema.ClubBook.Pages,
		schema.ClubBook.Locations, schema.ClubBook.CreatedAt,
		schema.ClubBook.Table, schema.ClubBook.CreatedAt,
	)

	rows, err := repository.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_books")
	}
	defer rows.Close()

	var books []*Book
	for rows.Next() {
		b := &Book{}
		if err := rows.Scan(&b.Slug, &b.Title, &b.Pages, &b.Locations, &b.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_book")
		}
		books = append(books, b)
	}

	return books, total, nil
}

func (repository *PostgresRepository) CreateDeadline(ctx context.Context, d *Deadline) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`,
		schema.ClubDeadline.Table, schema.ClubDeadline.BookSlug,
		schema.ClubDeadline.StartsOn, schema.ClubDeadline.EndsOn,
		schema.ClubDeadline.StartPage, schema.ClubDeadline.StartLocation,
		schema.ClubDeadline.EndPage, schema.ClubDeadline.EndLocation,
		schema.ClubDeadline.ID,
	)

	err := repository.db.QueryRow(ctx, query,
		d.BookSlug, d.StartsOn, d.EndsOn,
		d.StartPage, d.StartLocation, d.EndPage, d.EndLocation,
	).Scan(&d.ID)
	return dberr.Wrap(err, "create_deadline")
}

func (repository *PostgresRepository) ListDeadlinesByBook(ctx context.Context, slug string) ([]Deadline, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		schema.ClubDeadline.ID, schema.ClubDeadline.BookSlug,
		schema.ClubDeadline.StartsOn, schema.ClubDeadline.EndsOn,
		schema.ClubDeadline.StartPage, schema.ClubDeadline.StartLocation,
		schema.ClubDeadline.EndPage, schema.ClubDeadline.EndLocation,
		schema.ClubDeadline.Table, schema.ClubDeadline.BookSlug,
		schema.ClubDeadline.EndsOn,
	)

	rows, err := repository.db.Query(ctx, query, slug)
	if err != nil {
		return nil, dberr.Wrap(err, "list_deadlines")
	}
	defer rows.Close()

	var deadlines []Deadline
	for rows.Next() {
		var d Deadline
		if err := rows.Scan(
			&d.ID, &d.BookSlug, &d.StartsOn, &d.EndsOn,
			&d.StartPage, &d.StartLocation, &d.EndPage, &d.EndLocation,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_deadline")
		}
		deadlines = append(deadlines, d)
	}

	return deadlines, nil
}
