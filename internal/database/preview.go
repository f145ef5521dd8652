// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package database

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/rentalytics/internal/models"
)

// Preview returns the first limit rows of the dataset in file order.
func (db *DB) Preview(ctx context.Context, ds Dataset, limit int) (*models.Table, error) {
	info, err := db.table(ds)
	if err != nil {
		return nil, err
	}

	table := &models.Table{Columns: append([]string(nil), info.columns...), Rows: [][]interface{}{}}
	if limit <= 0 {
		return table, nil
	}

	query := fmt.Sprintf("SELECT * FROM %s ORDER BY rowid LIMIT %d", quoteIdent(string(ds)), limit)
	width := len(info.columns)
	err = db.queryAndScan(ctx, "preview", ds, query, nil, func(rows rowScanner) error {
		values := make([]interface{}, width)
		ptrs := make([]interface{}, width)
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return err
		}
		for i, v := range values {
			values[i] = cellValue(v)
		}
		table.Rows = append(table.Rows, values)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

// cellValue converts a scanned DuckDB value into a JSON-safe value.
func cellValue(v interface{}) interface{} {
	switch val := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(val)
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format("2006-01-02")
		}
		return val.Format("2006-01-02 15:04:05")
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil
		}
		return val
	case float32:
		return cellValue(float64(val))
	case *big.Int:
		if val.IsInt64() {
			return val.Int64()
		}
		return val.String()
	case duckdb.Decimal:
		if val.Value == nil {
			return nil
		}
		f, _ := new(big.Float).Quo(
			new(big.Float).SetInt(val.Value),
			new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(val.Scale)), nil)),
		).Float64()
		return f
	default:
		return val
	}
}
