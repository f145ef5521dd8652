// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" driver

	"github.com/tomtom215/rentalytics/internal/config"
)

// DB is an in-memory DuckDB engine holding the dashboard datasets.
// Datasets are loaded once by Load and are read-only afterwards.
type DB struct {
	conn *sql.DB
	cfg  *config.DatasetConfig

	loadOnce sync.Once
	loadErr  error
	loaded   atomic.Bool
	tables   map[Dataset]*tableInfo
}

// New opens an in-memory DuckDB database tuned by cfg.
func New(cfg *config.DatasetConfig) (*DB, error) {
	params := make([]string, 0, 2)
	if cfg.MaxMemory != "" {
		params = append(params, "max_memory="+cfg.MaxMemory)
	}
	if cfg.Threads > 0 {
		params = append(params, fmt.Sprintf("threads=%d", cfg.Threads))
	}

	connStr := ""
	if len(params) > 0 {
		connStr = "?" + strings.Join(params, "&")
	}

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		conn:   conn,
		cfg:    cfg,
		tables: make(map[Dataset]*tableInfo, len(Datasets)),
	}, nil
}

// Conn returns the underlying connection pool.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Ping verifies the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Close closes the database.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}
