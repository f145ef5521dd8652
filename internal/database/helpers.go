// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/rentalytics/internal/database/query"
	"github.com/tomtom215/rentalytics/internal/metrics"
)

// rowScanner is the subset of *sql.Rows handed to scan callbacks.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// queryRowWithContext executes a single-row query and records its metrics.
// sql.ErrNoRows is not an error: dest is left untouched.
func (db *DB) queryRowWithContext(ctx context.Context, op string, ds Dataset, query string, args []interface{}, dest ...interface{}) error {
	start := time.Now()
	err := db.conn.QueryRowContext(ctx, query, args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
	}
	metrics.RecordDBQuery(op, string(ds), time.Since(start), err)
	if err != nil {
		return fmt.Errorf("%s %s: %w", op, ds, err)
	}
	return nil
}

// queryAndScan executes a query and hands each row to scanner.
func (db *DB) queryAndScan(ctx context.Context, op string, ds Dataset, query string, args []interface{}, scanner func(rowScanner) error) (err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery(op, string(ds), time.Since(start), err)
	}()

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s %s: query: %w", op, ds, err)
	}
	defer closeQuietly(rows)

	for rows.Next() {
		if err = scanner(rows); err != nil {
			return fmt.Errorf("%s %s: scan row: %w", op, ds, err)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%s %s: rows iteration: %w", op, ds, err)
	}
	return nil
}

// num is the numeric view of a column: non-numeric cells become NULL.
func num(col string) string {
	return "TRY_CAST(" + quoteIdent(col) + " AS DOUBLE)"
}

// notNull builds a WHERE clause requiring every expression to be non-NULL.
func notNull(exprs ...string) string {
	return query.NewWhereBuilder().AddNotNull(exprs...).BuildWithPrefix()
}

// text is the label view of a column.
func text(col string) string {
	return "CAST(" + quoteIdent(col) + " AS VARCHAR)"
}
