// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package dashboard

import (
	"sort"
	"strconv"

	"github.com/tomtom215/rentalytics/internal/database"
	"github.com/tomtom215/rentalytics/internal/models"
)

func split(lvs []database.LabelValue) ([]string, []float64) {
	labels := make([]string, len(lvs))
	values := make([]float64, len(lvs))
	for i, lv := range lvs {
		labels[i], values[i] = lv.Label, lv.Value
	}
	return labels, values
}

// maxOf returns the first entry holding the largest value.
func maxOf(lvs []database.LabelValue) (database.LabelValue, bool) {
	if len(lvs) == 0 {
		return database.LabelValue{}, false
	}
	best := lvs[0]
	for _, lv := range lvs[1:] {
		if lv.Value > best.Value {
			best = lv
		}
	}
	return best, true
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

func share(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// pivotCells turns sparse cells into a dense matrix, filling gaps with 0.
// Rows keep their first-seen order. Columns follow colOrder when given,
// otherwise they are sorted with numeric keys compared as numbers.
func pivotCells(cells []database.Cell, colOrder ...string) *models.Matrix {
	m := &models.Matrix{Rows: []string{}, Columns: []string{}, Values: [][]float64{}}
	rowIdx := make(map[string]int)
	colIdx := make(map[string]int)

	if len(colOrder) > 0 {
		m.Columns = append(m.Columns, colOrder...)
	} else {
		seen := make(map[string]bool)
		for _, c := range cells {
			if !seen[c.Column] {
				seen[c.Column] = true
				m.Columns = append(m.Columns, c.Column)
			}
		}
		sortKeys(m.Columns)
	}
	for j, col := range m.Columns {
		colIdx[col] = j
	}

	for _, c := range cells {
		j, ok := colIdx[c.Column]
		if !ok {
			continue
		}
		i, ok := rowIdx[c.Row]
		if !ok {
			i = len(m.Rows)
			rowIdx[c.Row] = i
			m.Rows = append(m.Rows, c.Row)
			m.Values = append(m.Values, make([]float64, len(m.Columns)))
		}
		m.Values[i][j] += c.Value
	}
	return m
}

// sortKeys orders numeric keys numerically ahead of other keys, which sort
// as strings.
func sortKeys(keys []string) {
	sort.SliceStable(keys, func(a, b int) bool {
		fa, errA := strconv.ParseFloat(keys[a], 64)
		fb, errB := strconv.ParseFloat(keys[b], 64)
		switch {
		case errA == nil && errB == nil:
			return fa < fb
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return keys[a] < keys[b]
		}
	})
}

func column(m *models.Matrix, j int) []float64 {
	out := make([]float64, len(m.Rows))
	for i := range m.Rows {
		out[i] = m.Values[i][j]
	}
	return out
}

func rowTotals(m *models.Matrix) []database.LabelValue {
	out := make([]database.LabelValue, len(m.Rows))
	for i, row := range m.Rows {
		out[i] = database.LabelValue{Label: row, Value: sum(m.Values[i])}
	}
	return out
}

func labelsOf(lvs []database.LabelValue) []string {
	out := make([]string, len(lvs))
	for i, lv := range lvs {
		out[i] = lv.Label
	}
	return out
}
