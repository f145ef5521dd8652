// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomtom215/rentalytics/internal/logging"
	"github.com/tomtom215/rentalytics/internal/metrics"
)

// Dataset names one cleaned dataset. The value doubles as the DuckDB table name.
type Dataset string

const (
	Rentals         Dataset = "detalle_alquileres"
	MonthlyCategory Dataset = "alquileres_por_mes_categoria"
	StoreRevenue    Dataset = "ingresos_por_tienda_categoria"
	TopFilms        Dataset = "peliculas_mas_rentables"
	TopCustomers    Dataset = "clientes_mas_frecuentes"
)

// Datasets lists every dataset the dashboard loads, in load order.
var Datasets = []Dataset{Rentals, MonthlyCategory, StoreRevenue, TopFilms, TopCustomers}

// FileName returns the cleaned CSV file name of the dataset.
func (d Dataset) FileName() string {
	return string(d) + "_limpio.csv"
}

type tableInfo struct {
	path    string
	columns []string
	colset  map[string]struct{}
	rows    int64
}

// Load reads every dataset file from the configured directory into DuckDB.
// Only the first call does any work; later calls return the first result.
func (db *DB) Load(ctx context.Context) error {
	db.loadOnce.Do(func() {
		start := time.Now()
		db.loadErr = db.loadAll(ctx)
		metrics.RecordDatasetLoad(time.Since(start), db.loadErr)
		if db.loadErr == nil {
			db.loaded.Store(true)
		}
	})
	return db.loadErr
}

// Loaded reports whether Load has completed successfully.
func (db *DB) Loaded() bool {
	return db.loaded.Load()
}

func (db *DB) loadAll(ctx context.Context) error {
	var missing []error
	for _, ds := range Datasets {
		path := filepath.Join(db.cfg.Dir, ds.FileName())
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, fmt.Errorf("%w: %s", ErrDatasetMissing, path))
		}
	}
	if len(missing) > 0 {
		return errors.Join(missing...)
	}

	for _, ds := range Datasets {
		info, err := db.loadDataset(ctx, ds, filepath.Join(db.cfg.Dir, ds.FileName()))
		if err != nil {
			return fmt.Errorf("load %s: %w", ds.FileName(), err)
		}
		db.tables[ds] = info
		metrics.SetDatasetRows(string(ds), info.rows)
		logger := logging.WithComponent("datasets")
		logger.Info().
			Str("dataset", string(ds)).
			Int64("rows", info.rows).
			Int("columns", len(info.columns)).
			Msg("Dataset loaded")
	}
	return nil
}

func (db *DB) loadDataset(ctx context.Context, ds Dataset, path string) (*tableInfo, error) {
	create := fmt.Sprintf(
		"CREATE OR REPLACE TABLE %s AS SELECT * FROM read_csv_auto(%s, header = true)",
		quoteIdent(string(ds)), quoteLiteral(path),
	)
	if _, err := db.conn.ExecContext(ctx, create); err != nil {
		return nil, fmt.Errorf("create table: %w", err)
	}

	info := &tableInfo{path: path, colset: make(map[string]struct{})}

	err := db.queryAndScan(ctx, "columns", ds,
		`SELECT column_name FROM information_schema.columns
		 WHERE table_name = ? ORDER BY ordinal_position`,
		[]interface{}{string(ds)},
		func(rows rowScanner) error {
			var name string
			if err := rows.Scan(&name); err != nil {
				return err
			}
			info.columns = append(info.columns, name)
			info.colset[name] = struct{}{}
			return nil
		})
	if err != nil {
		return nil, err
	}

	err = db.queryRowWithContext(ctx, "count", ds,
		"SELECT COUNT(*) FROM "+quoteIdent(string(ds)), nil, &info.rows)
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (db *DB) table(ds Dataset) (*tableInfo, error) {
	if !db.Loaded() {
		return nil, ErrNotLoaded
	}
	info, ok := db.tables[ds]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotLoaded, ds)
	}
	return info, nil
}

// requireColumns resolves the dataset and checks every named column exists.
func (db *DB) requireColumns(ds Dataset, cols ...string) error {
	info, err := db.table(ds)
	if err != nil {
		return err
	}
	for _, c := range cols {
		if _, ok := info.colset[c]; !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownColumn, ds, c)
		}
	}
	return nil
}

// HasColumns reports whether the dataset is loaded and has every named column.
func (db *DB) HasColumns(ds Dataset, cols ...string) bool {
	return db.requireColumns(ds, cols...) == nil
}

// Columns returns the dataset's columns in file order.
func (db *DB) Columns(ds Dataset) []string {
	info, err := db.table(ds)
	if err != nil {
		return nil
	}
	out := make([]string, len(info.columns))
	copy(out, info.columns)
	return out
}

// RowCount returns the number of rows loaded for the dataset.
func (db *DB) RowCount(ds Dataset) int64 {
	info, err := db.table(ds)
	if err != nil {
		return 0
	}
	return info.rows
}

// quoteIdent quotes a DuckDB identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// quoteLiteral quotes a DuckDB string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
