// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/readalong/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// Overload and timeout conditions become SERVICE_UNAVAILABLE so clients see a
// retryable failure rather than a generic server error. The core never retries
// on their behalf.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Cancelled or overloaded backends are retryable by the caller
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return apperr.Unavailable(fmt.Errorf("%s: %w", action, err))
	}

	// 3. SQLSTATE classification
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Conflict("Resource already exists")
		case pgerrcode.QueryCanceled, pgerrcode.TooManyConnections, pgerrcode.AdminShutdown:
			return apperr.Unavailable(fmt.Errorf("%s: %w", action, err))
		}
	}

	// 4. Unknown query errors become Internal Server Errors
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
