// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/readalong/internal/platform/database/schema"
	"github.com/taibuivan/readalong/internal/platform/dberr"
)

type PostgresEntryRepository struct {
	db *pgxpool.Pool
}

func NewPostgresEntryRepository(db *pgxpool.Pool) *PostgresEntryRepository {
	return &PostgresEntryRepository{db: db}
}

func (repository *PostgresEntryRepository) CreateEntry(ctx context.Context, e *Entry) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`,
		schema.ClubEntry.Table, schema.ClubEntry.BookSlug, schema.ClubEntry.Reader,
		schema.ClubEntry.Page, schema.ClubEntry.Location, schema.ClubEntry.Verdict,
		schema.ClubEntry.CreatedAt,
		schema.ClubEntry.ID,
	)

	err := repository.db.QueryRow(ctx, query,
		e.BookSlug, e.Reader, e.Page, e.Location, e.Verdict, e.CreatedAt,
	).Scan(&e.ID)
	return dberr.Wrap(err, "create_entry")
}

func (repository *PostgresEntryRepository) GetEntry(ctx context.Context, id int64) (*Entry, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.ClubEntry.ID, schema.ClubEntry.BookSlug, schema.ClubEntry.Reader,
		schema.ClubEntry.Page, schema.ClubEntry.Location, schema.ClubEntry.Verdict,
		schema.ClubEntry.CreatedAt,
		schema.ClubEntry.Table, schema.ClubEntry.ID,
	)

	e := &Entry{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.BookSlug, &e.Reader, &e.Page, &e.Location, &e.Verdict, &e.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_entry")
	}

	return e, nil
}

func (repository *PostgresEntryRepository) ListEntriesByReader(ctx context.Context, bookSlug, reader string) ([]*Entry, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
		ORDER BY %s ASC, %s ASC
	`,
		schema.ClubEntry.ID, schema.ClubEntry.BookSlug, schema.ClubEntry.Reader,
		schema.ClubEntry.Page, schema.ClubEntry.Location, schema.ClubEntry.Verdict,
		schema.ClubEntry.CreatedAt,
		schema.ClubEntry.Table, schema.ClubEntry.BookSlug, schema.ClubEntry.Reader,
		schema.ClubEntry.CreatedAt, schema.ClubEntry.ID,
	)

	return repository.queryEntries(ctx, query, bookSlug, reader)
}

func (repository *PostgresEntryRepository) ListRecentEntriesByReader(ctx context.Context, bookSlug, reader string, limit int) ([]*Entry, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
		ORDER BY %s DESC, %s DESC
		LIMIT $3
	`,
		schema.ClubEntry.ID, schema.ClubEntry.BookSlug, schema.ClubEntry.Reader,
		schema.ClubEntry.Page, schema.ClubEntry.Location, schema.ClubEntry.Verdict,
		schema.ClubEntry.CreatedAt,
		schema.ClubEntry.Table, schema.ClubEntry.BookSlug, schema.ClubEntry.Reader,
		schema.ClubEntry.CreatedAt, schema.ClubEntry.ID,
	)

	return repository.queryEntries(ctx, query, bookSlug, reader, limit)
}

func (repository *PostgresEntryRepository) LatestEntryByReader(ctx context.Context, bookSlug, reader string) (*Entry, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
		ORDER BY %s DESC, %s DESC
		LIMIT 1
	`,
		schema.ClubEntry.ID, schema.ClubEntry.BookSlug, schema.ClubEntry.Reader,
		schema.ClubEntry.Page, schema.ClubEntry.Location, schema.ClubEntry.Verdict,
		schema.ClubEntry.CreatedAt,
		schema.ClubEntry.Table, schema.ClubEntry.BookSlug, schema.ClubEntry.Reader,
		schema.ClubEntry.CreatedAt, schema.ClubEntry.ID,
	)

	e := &Entry{}
	err := repository.db.QueryRow(ctx, query, bookSlug, reader).Scan(
		&e.ID, &e.BookSlug, &e.Reader, &e.Page, &e.Location, &e.Verdict, &e.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "latest_entry")
	}

	return e, nil
}

func (repository *PostgresEntryRepository) queryEntries(ctx context.Context, query string, args ...any) ([]*Entry, error) {
	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_entries")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		if err := rows.Scan(&e.ID, &e.BookSlug, &e.Reader, &e.Page, &e.Location, &e.Verdict, &e.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_entry")
		}
		entries = append(entries, e)
	}

	return entries, nil
}

type PostgresSnapshotRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSnapshotRepository(db *pgxpool.Pool) *PostgresSnapshotRepository {
	return &PostgresSnapshotRepository{db: db}
}

func (repository *PostgresSnapshotRepository) UpsertSnapshot(ctx context.Context, s *Snapshot) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (%s, %s) DO UPDATE
		SET %s = EXCLUDED.%s,
		    %s = EXCLUDED.%s,
		    %s = EXCLUDED.%s,
		    %s = EXCLUDED.%s
	`,
		schema.ClubSnapshot.Table, schema.ClubSnapshot.BookSlug, schema.ClubSnapshot.Reader,
		schema.ClubSnapshot.LastEntryID, schema.ClubSnapshot.Percent,
		schema.ClubSnapshot.UpdatedAt, schema.ClubSnapshot.UpdatedOn,
		schema.ClubSnapshot.BookSlug, schema.ClubSnapshot.Reader,
		schema.ClubSnapshot.LastEntryID, schema.ClubSnapshot.LastEntryID,
		schema.ClubSnapshot.Percent, schema.ClubSnapshot.Percent,
		schema.ClubSnapshot.UpdatedAt, schema.ClubSnapshot.UpdatedAt,
		schema.ClubSnapshot.UpdatedOn, schema.ClubSnapshot.UpdatedOn,
	)

	_, err := repository.db.Exec(ctx, query,
		s.BookSlug, s.Reader, s.LastEntryID, s.Percent, s.UpdatedAt, s.UpdatedOn,
	)
	return dberr.Wrap(err, "upsert_snapshot")
}

func (repository *PostgresSnapshotRepository) GetSnapshot(ctx context.Context, bookSlug, reader string) (*Snapshot, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
	`,
		schema.ClubSnapshot.BookSlug, schema.ClubSnapshot.Reader,
		schema.ClubSnapshot.LastEntryID, schema.ClubSnapshot.Percent,
		schema.ClubSnapshot.UpdatedAt, schema.ClubSnapshot.UpdatedOn,
		schema.ClubSnapshot.Table, schema.ClubSnapshot.BookSlug, schema.ClubSnapshot.Reader,
	)

	s := &Snapshot{}
	err := repository.db.QueryRow(ctx, query, bookSlug, reader).Scan(
		&s.BookSlug, &s.Reader, &s.LastEntryID, &s.Percent, &s.UpdatedAt, &s.UpdatedOn,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_snapshot")
	}

	return s, nil
}
