// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Rows are kept in file order, so DuckDB's rowid is the position of a row
// in its CSV file. Row orderings fall back to rowid, which makes ties
// resolve to the first occurrence. TopGroups breaks tied sums by label.

// LabelValue is one labelled measurement.
type LabelValue struct {
	Label string
	Value float64
}

// Cell is one entry of a two-dimensional aggregation.
type Cell struct {
	Row    string
	Column string
	Value  float64
}

// Extreme is the row holding a column's maximum or minimum.
type Extreme struct {
	Labels []string // values of the requested label columns, "" for NULL
	Value  float64
}

// Point is one scatter point.
type Point struct {
	Label string
	X, Y  float64
}

// AggFunc selects the aggregate computed by Aggregate and Pivot.
type AggFunc int

const (
	AggSum AggFunc = iota
	AggMean
	AggCountDistinct
)

func (f AggFunc) expr(col string) string {
	switch f {
	case AggMean:
		return "AVG(" + num(col) + ")"
	case AggCountDistinct:
		return "CAST(COUNT(DISTINCT " + quoteIdent(col) + ") AS DOUBLE)"
	default:
		return "SUM(" + num(col) + ")"
	}
}

func (f AggFunc) String() string {
	switch f {
	case AggMean:
		return "mean"
	case AggCountDistinct:
		return "count_distinct"
	default:
		return "sum"
	}
}

// CountOrder selects the ordering of ValueCounts.
type CountOrder int

const (
	// ByCountDesc orders by count, largest first.
	ByCountDesc CountOrder = iota
	// ByKey orders by the value itself, numerically when it is a number.
	ByKey
)

// Aggregate computes one aggregate over a column. ok is false when the
// column holds no usable values.
func (db *DB) Aggregate(ctx context.Context, ds Dataset, fn AggFunc, col string) (value float64, ok bool, err error) {
	if err := db.requireColumns(ds, col); err != nil {
		return 0, false, err
	}
	var v sql.NullFloat64
	query := fmt.Sprintf("SELECT %s FROM %s", fn.expr(col), quoteIdent(string(ds)))
	if err := db.queryRowWithContext(ctx, "aggregate_"+fn.String(), ds, query, nil, &v); err != nil {
		return 0, false, err
	}
	return v.Float64, v.Valid, nil
}

// ValueCounts counts the rows per non-NULL value of col.
func (db *DB) ValueCounts(ctx context.Context, ds Dataset, col string, order CountOrder) ([]LabelValue, error) {
	if err := db.requireColumns(ds, col); err != nil {
		return nil, err
	}

	orderBy := "COUNT(*) DESC, MIN(rowid)"
	if order == ByKey {
		orderBy = fmt.Sprintf("TRY_CAST(%s AS DOUBLE) NULLS LAST, 1", quoteIdent(col))
	}
	where := notNull(quoteIdent(col))
	query := fmt.Sprintf(`SELECT %s, COUNT(*) FROM %s
		%s GROUP BY %s ORDER BY %s`,
		text(col), quoteIdent(string(ds)), where, quoteIdent(col), orderBy)

	var out []LabelValue
	err := db.queryAndScan(ctx, "value_counts", ds, query, nil, func(rows rowScanner) error {
		var lv LabelValue
		var n int64
		if err := rows.Scan(&lv.Label, &n); err != nil {
			return err
		}
		lv.Value = float64(n)
		out = append(out, lv)
		return nil
	})
	return out, err
}

// CrossCounts counts the rows per (rowCol, colCol) pair, ordered by both labels.
func (db *DB) CrossCounts(ctx context.Context, ds Dataset, rowCol, colCol string) ([]Cell, error) {
	if err := db.requireColumns(ds, rowCol, colCol); err != nil {
		return nil, err
	}
	where := notNull(quoteIdent(rowCol), quoteIdent(colCol))
	query := fmt.Sprintf(`SELECT %s, %s, COUNT(*) FROM %s
		%s
		GROUP BY 1, 2 ORDER BY 1, 2`,
		text(rowCol), text(colCol), quoteIdent(string(ds)), where)

	var out []Cell
	err := db.queryAndScan(ctx, "cross_counts", ds, query, nil, func(rows rowScanner) error {
		var c Cell
		var n int64
		if err := rows.Scan(&c.Row, &c.Column, &n); err != nil {
			return err
		}
		c.Value = float64(n)
		out = append(out, c)
		return nil
	})
	return out, err
}

// Max returns the first row holding the largest value of metric, together
// with the values of the label columns. It returns nil when metric has no
// numeric value.
func (db *DB) Max(ctx context.Context, ds Dataset, metric string, labels ...string) (*Extreme, error) {
	return db.extreme(ctx, ds, metric, "DESC", labels)
}

// Min is the counterpart of Max.
func (db *DB) Min(ctx context.Context, ds Dataset, metric string, labels ...string) (*Extreme, error) {
	return db.extreme(ctx, ds, metric, "ASC", labels)
}

func (db *DB) extreme(ctx context.Context, ds Dataset, metric, dir string, labels []string) (*Extreme, error) {
	if err := db.requireColumns(ds, append([]string{metric}, labels...)...); err != nil {
		return nil, err
	}

	selectList := ""
	for _, l := range labels {
		selectList += text(l) + ", "
	}
	where := notNull(num(metric))
	query := fmt.Sprintf(`SELECT %s%s FROM %s
		%s ORDER BY %s %s, rowid LIMIT 1`,
		selectList, num(metric), quoteIdent(string(ds)), where, num(metric), dir)

	vals := make([]sql.NullString, len(labels))
	var v sql.NullFloat64
	dest := make([]interface{}, 0, len(labels)+1)
	for i := range vals {
		dest = append(dest, &vals[i])
	}
	dest = append(dest, &v)

	if err := db.queryRowWithContext(ctx, "extreme", ds, query, nil, dest...); err != nil {
		return nil, err
	}
	if !v.Valid {
		return nil, nil
	}

	ext := &Extreme{Labels: make([]string, len(labels)), Value: v.Float64}
	for i, s := range vals {
		ext.Labels[i] = s.String
	}
	return ext, nil
}

// TopN returns the n rows with the largest metric, one per label.
// A repeated label keeps its best row. Ties keep file order.
func (db *DB) TopN(ctx context.Context, ds Dataset, label, metric string, n int) ([]LabelValue, error) {
	return db.TopNByKey(ctx, ds, label, label, metric, n)
}

// TopNByKey is TopN with rows identified by key instead of label, so two
// entities sharing a display label are ranked separately.
func (db *DB) TopNByKey(ctx context.Context, ds Dataset, key, label, metric string, n int) ([]LabelValue, error) {
	if err := db.requireColumns(ds, key, label, metric); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, nil
	}

	where := notNull(quoteIdent(key), quoteIdent(label), num(metric))
	query := fmt.Sprintf(`SELECT label, value FROM (
			SELECT %s AS label, %s AS value, rowid AS pos,
			       row_number() OVER (PARTITION BY %s ORDER BY %s DESC, rowid) AS rn
			FROM %s
			%s
		) WHERE rn = 1
		ORDER BY value DESC, pos
		LIMIT %d`,
		text(label), num(metric), quoteIdent(key), num(metric),
		quoteIdent(string(ds)), where, n)

	var out []LabelValue
	err := db.queryAndScan(ctx, "top_n", ds, query, nil, func(rows rowScanner) error {
		var lv LabelValue
		if err := rows.Scan(&lv.Label, &lv.Value); err != nil {
			return err
		}
		out = append(out, lv)
		return nil
	})
	return out, err
}

// TopGroups ranks the values of group by the sum of metric and returns the
// first n. Tied sums are ordered by group label.
func (db *DB) TopGroups(ctx context.Context, ds Dataset, group, metric string, n int) ([]LabelValue, error) {
	if err := db.requireColumns(ds, group, metric); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, nil
	}

	where := notNull(quoteIdent(group))
	query := fmt.Sprintf(`SELECT %s, COALESCE(SUM(%s), 0) FROM %s
		%s GROUP BY %s
		ORDER BY 2 DESC, 1 LIMIT %d`,
		text(group), num(metric), quoteIdent(string(ds)),
		where, quoteIdent(group), n)

	var out []LabelValue
	err := db.queryAndScan(ctx, "top_groups", ds, query, nil, func(rows rowScanner) error {
		var lv LabelValue
		if err := rows.Scan(&lv.Label, &lv.Value); err != nil {
			return err
		}
		out = append(out, lv)
		return nil
	})
	return out, err
}

// Pivot aggregates metric per (rowCol, colCol) pair. Cells are ordered by
// row then column; numeric keys sort numerically. Pairs with no numeric
// metric value are omitted, so callers fill gaps with zero.
func (db *DB) Pivot(ctx context.Context, ds Dataset, rowCol, colCol, metric string, fn AggFunc) ([]Cell, error) {
	if err := db.requireColumns(ds, rowCol, colCol, metric); err != nil {
		return nil, err
	}

	where := notNull(quoteIdent(rowCol), quoteIdent(colCol))
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s
		%s
		GROUP BY %s, %s
		HAVING %s IS NOT NULL
		ORDER BY TRY_CAST(%s AS DOUBLE) NULLS LAST, 1, TRY_CAST(%s AS DOUBLE) NULLS LAST, 2`,
		text(rowCol), text(colCol), fn.expr(metric), quoteIdent(string(ds)),
		where,
		quoteIdent(rowCol), quoteIdent(colCol),
		fn.expr(metric),
		quoteIdent(rowCol), quoteIdent(colCol))

	var out []Cell
	err := db.queryAndScan(ctx, "pivot_"+fn.String(), ds, query, nil, func(rows rowScanner) error {
		var c Cell
		if err := rows.Scan(&c.Row, &c.Column, &c.Value); err != nil {
			return err
		}
		out = append(out, c)
		return nil
	})
	return out, err
}

// FirstPerGroup returns, for each value of group, the metric of the first
// row carrying it, ordered by group label.
func (db *DB) FirstPerGroup(ctx context.Context, ds Dataset, group, metric string) ([]LabelValue, error) {
	if err := db.requireColumns(ds, group, metric); err != nil {
		return nil, err
	}

	where := notNull(quoteIdent(group))
	query := fmt.Sprintf(`SELECT label, value FROM (
			SELECT %s AS label, %s AS value,
			       row_number() OVER (PARTITION BY %s ORDER BY rowid) AS rn
			FROM %s %s
		) WHERE rn = 1 AND value IS NOT NULL
		ORDER BY label`,
		text(group), num(metric), quoteIdent(group),
		quoteIdent(string(ds)), where)

	var out []LabelValue
	err := db.queryAndScan(ctx, "first_per_group", ds, query, nil, func(rows rowScanner) error {
		var lv LabelValue
		if err := rows.Scan(&lv.Label, &lv.Value); err != nil {
			return err
		}
		out = append(out, lv)
		return nil
	})
	return out, err
}

// GroupBy aggregates metric per value of group, ordered by the smallest
// orderCol value seen in each group, then by group label.
func (db *DB) GroupBy(ctx context.Context, ds Dataset, group, metric string, fn AggFunc, orderCol string) ([]LabelValue, error) {
	if err := db.requireColumns(ds, group, metric, orderCol); err != nil {
		return nil, err
	}

	where := notNull(quoteIdent(group))
	query := fmt.Sprintf(`SELECT %s, %s FROM %s
		%s GROUP BY %s
		HAVING %s IS NOT NULL
		ORDER BY MIN(%s) NULLS LAST, 1`,
		text(group), fn.expr(metric), quoteIdent(string(ds)),
		where, quoteIdent(group),
		fn.expr(metric), num(orderCol))

	var out []LabelValue
	err := db.queryAndScan(ctx, "group_"+fn.String(), ds, query, nil, func(rows rowScanner) error {
		var lv LabelValue
		if err := rows.Scan(&lv.Label, &lv.Value); err != nil {
			return err
		}
		out = append(out, lv)
		return nil
	})
	return out, err
}

// Points returns one point per row with numeric x and y, in file order.
func (db *DB) Points(ctx context.Context, ds Dataset, label, x, y string) ([]Point, error) {
	if err := db.requireColumns(ds, label, x, y); err != nil {
		return nil, err
	}

	where := notNull(num(x), num(y))
	query := fmt.Sprintf(`SELECT COALESCE(%s, ''), %s, %s FROM %s
		%s ORDER BY rowid`,
		text(label), num(x), num(y), quoteIdent(string(ds)), where)

	var out []Point
	err := db.queryAndScan(ctx, "points", ds, query, nil, func(rows rowScanner) error {
		var p Point
		if err := rows.Scan(&p.Label, &p.X, &p.Y); err != nil {
			return err
		}
		out = append(out, p)
		return nil
	})
	return out, err
}
