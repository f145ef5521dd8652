// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package extract

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" driver
	"github.com/go-sql-driver/mysql"

	"github.com/tomtom215/rentalytics/internal/config"
)

// defaultPingTimeout bounds the initial connectivity check.
const defaultPingTimeout = 10 * time.Second

// Source is an open handle on the database the reports are extracted from.
type Source struct {
	db      *sql.DB
	dialect Dialect
	name    string
}

// Open connects to the configured source and verifies it with a ping.
// The pool is capped at one connection; Run pins it for the whole export.
func Open(ctx context.Context, cfg config.SourceConfig) (*Source, error) {
	var (
		db      *sql.DB
		dialect Dialect
		name    string
	)

	switch cfg.Driver {
	case string(DialectMySQL):
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = cfg.Addr()
		mc.DBName = cfg.Database
		mc.ParseTime = true
		mc.Timeout = cfg.Timeout

		connector, err := mysql.NewConnector(mc)
		if err != nil {
			return nil, fmt.Errorf("invalid mysql configuration: %w", err)
		}
		db = sql.OpenDB(connector)
		dialect = DialectMySQL
		name = fmt.Sprintf("mysql://%s/%s", mc.Addr, mc.DBName)

	case string(DialectDuckDB):
		var err error
		db, err = sql.Open("duckdb", cfg.Path+"?access_mode=read_only")
		if err != nil {
			return nil, fmt.Errorf("failed to open duckdb source %s: %w", cfg.Path, err)
		}
		dialect = DialectDuckDB
		name = "duckdb://" + cfg.Path

	default:
		return nil, fmt.Errorf("unsupported source driver %q", cfg.Driver)
	}

	src := NewSource(db, dialect)
	src.name = name

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close() //nolint:errcheck
		return nil, fmt.Errorf("failed to connect to %s: %w", name, err)
	}

	return src, nil
}

// NewSource wraps an already opened database. The pool is limited to a
// single connection.
func NewSource(db *sql.DB, dialect Dialect) *Source {
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return &Source{db: db, dialect: dialect, name: string(dialect)}
}

// Dialect returns the SQL flavour of the source.
func (s *Source) Dialect() Dialect {
	return s.dialect
}

// String returns a printable description of the source without credentials.
func (s *Source) String() string {
	return s.name
}

// Close releases the underlying pool.
func (s *Source) Close() error {
	return s.db.Close()
}
