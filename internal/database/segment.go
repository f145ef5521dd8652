// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
)

// SegmentRule flags rows whose frequency is at or below one quantile and
// whose value is at or above another. Quantiles use linear interpolation.
type SegmentRule struct {
	Dataset           Dataset
	LabelColumn       string
	FrequencyColumn   string
	FrequencyQuantile float64
	ValueColumn       string
	ValueQuantile     float64
}

// SegmentRow is one dataset row as seen by a segmentation.
type SegmentRow struct {
	Label     string
	Frequency float64
	Value     float64
	Complete  bool // both frequency and value are numeric
	Flagged   bool
}

// SegmentResult is the outcome of Segment. Rows holds every dataset row,
// flagged rows first, each group in file order.
type SegmentResult struct {
	FrequencyThreshold float64
	ValueThreshold     float64
	Rows               []SegmentRow
}

// Flagged returns the flagged rows in file order.
func (r *SegmentResult) Flagged() []SegmentRow {
	var out []SegmentRow
	for _, row := range r.Rows {
		if row.Flagged {
			out = append(out, row)
		}
	}
	return out
}

// Count is the number of flagged rows.
func (r *SegmentResult) Count() int {
	n := 0
	for _, row := range r.Rows {
		if row.Flagged {
			n++
		}
	}
	return n
}

// Total is the number of rows considered.
func (r *SegmentResult) Total() int {
	return len(r.Rows)
}

// Percent is the flagged share of all rows, 0 for an empty dataset.
func (r *SegmentResult) Percent() float64 {
	if len(r.Rows) == 0 {
		return 0
	}
	return float64(r.Count()) / float64(len(r.Rows)) * 100
}

func (rule SegmentRule) validate() error {
	for _, q := range []float64{rule.FrequencyQuantile, rule.ValueQuantile} {
		if q < 0 || q > 1 {
			return fmt.Errorf("quantile %v outside [0, 1]", q)
		}
	}
	return nil
}

// Segment applies rule to its dataset. The result depends only on the
// loaded data, so repeated calls return identical results.
func (db *DB) Segment(ctx context.Context, rule SegmentRule) (*SegmentResult, error) {
	if err := rule.validate(); err != nil {
		return nil, err
	}
	if err := db.requireColumns(rule.Dataset, rule.LabelColumn, rule.FrequencyColumn, rule.ValueColumn); err != nil {
		return nil, err
	}

	freq, val := num(rule.FrequencyColumn), num(rule.ValueColumn)
	table := quoteIdent(string(rule.Dataset))

	// quantile_cont needs constant fractions, so they are inlined.
	query := fmt.Sprintf(`WITH q AS (
			SELECT quantile_cont(%s, %s) AS fq, quantile_cont(%s, %s) AS vq FROM %s
		)
		SELECT COALESCE(%s, ''), %s, %s,
		       COALESCE(%s <= q.fq AND %s >= q.vq, false) AS flagged,
		       q.fq, q.vq
		FROM %s, q
		ORDER BY flagged DESC, %s.rowid`,
		freq, formatFraction(rule.FrequencyQuantile), val, formatFraction(rule.ValueQuantile), table,
		text(rule.LabelColumn), freq, val,
		freq, val,
		table, table)

	res := &SegmentResult{}
	err := db.queryAndScan(ctx, "segment", rule.Dataset, query, nil, func(rows rowScanner) error {
		var (
			row    SegmentRow
			f, v   sql.NullFloat64
			fq, vq sql.NullFloat64
		)
		if err := rows.Scan(&row.Label, &f, &v, &row.Flagged, &fq, &vq); err != nil {
			return err
		}
		row.Frequency, row.Value = f.Float64, v.Float64
		row.Complete = f.Valid && v.Valid
		res.FrequencyThreshold, res.ValueThreshold = fq.Float64, vq.Float64
		res.Rows = append(res.Rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func formatFraction(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
