// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/readalong/internal/platform/constants"
	"github.com/taibuivan/readalong/internal/platform/database/schema"
	"github.com/taibuivan/readalong/internal/platform/dberr"
	"github.com/taibuivan/readalong/pkg/calendar"
)

type PostgresSnapshotSource struct {
	db *pgxpool.Pool
}

func NewPostgresSnapshotSource(db *pgxpool.Pool) *PostgresSnapshotSource {
	return &PostgresSnapshotSource{db: db}
}

func (source *PostgresSnapshotSource) RankedByPercent(ctx context.Context, bookSlug string, limit int, ascending bool, window *calendar.Interval) ([]RankedReader, error) {
	direction := "DESC"
	if ascending {
		direction = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = $1 AND %s < $2
	`,
		schema.ClubSnapshot.Reader, schema.ClubSnapshot.Percent,
		schema.ClubSnapshot.Table,
		schema.ClubSnapshot.BookSlug, schema.ClubSnapshot.Percent,
	)

	args := []any{bookSlug, constants.FinishedPercent}

	if window != nil {
		query += fmt.Sprintf(" AND %s BETWEEN $3 AND $4", schema.ClubSnapshot.UpdatedOn)
		args = append(args, window.Start, window.End)
	}

	query += fmt.Sprintf(" ORDER BY %s %s, %s ASC LIMIT $%d",
		schema.ClubSnapshot.Percent, direction, schema.ClubSnapshot.Reader, len(args)+1,
	)
	args = append(args, limit)

	return source.queryRanked(ctx, query, args...)
}

func (source *PostgresSnapshotSource) Finished(ctx context.Context, bookSlug string) ([]RankedReader, error) {
	// Percentage first, then update time: readers who stopped exactly at the
	// threshold precede over-reporters, ties resolve by who got there first.
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = $1 AND %s >= $2
		ORDER BY %s ASC, %s ASC
	`,
		schema.ClubSnapshot.Reader, schema.ClubSnapshot.Percent,
		schema.ClubSnapshot.Table,
		schema.ClubSnapshot.BookSlug, schema.ClubSnapshot.Percent,
		schema.ClubSnapshot.Percent, schema.ClubSnapshot.UpdatedAt,
	)

	return source.queryRanked(ctx, query, bookSlug, constants.FinishedPercent)
}

func (source *PostgresSnapshotSource) CountReadersOn(ctx context.Context, bookSlug string, day time.Time) (int, error) {
	query := fmt.Sprintf(`
		SELECT count(*)
		FROM %s
		WHERE %s = $1 AND %s = $2
	`,
		schema.ClubSnapshot.Table,
		schema.ClubSnapshot.BookSlug, schema.ClubSnapshot.UpdatedOn,
	)

	var count int
	if err := source.db.QueryRow(ctx, query, bookSlug, day).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "count_readers_on")
	}

	return count, nil
}

func (source *PostgresSnapshotSource) queryRanked(ctx context.Context, query string, args ...any) ([]RankedReader, error) {
	rows, err := source.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "rank_snapshots")
	}
	defer rows.Close()

	var ranked []RankedReader
	for rows.Next() {
		var r RankedReader
		if err := rows.Scan(&r.Reader, &r.Percent); err != nil {
			return nil, dberr.Wrap(err, "scan_ranked_reader")
		}
		r.Name = DisplayName(r.Reader)
		ranked = append(ranked, r)
	}

	return ranked, nil
}
