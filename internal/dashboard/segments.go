// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package dashboard

import (
	"fmt"

	"github.com/tomtom215/rentalytics/internal/database"
	"github.com/tomtom215/rentalytics/internal/models"
)

// segmentDef describes a quantile segment and how it is presented.
type segmentDef struct {
	id      string
	title   string
	caption string
	flagged string // series name of flagged rows
	others  string // series name of the rest
	noun    string // plural noun used in the summary line
	xLabel  string
	yLabel  string
	rule    database.SegmentRule
}

var customerSegment = segmentDef{
	id:      "customers_of_interest",
	title:   "Customers with few transactions and high spend",
	caption: "These customers spend a lot despite few transactions. They are loyalty opportunities.",
	flagged: "Customers of interest",
	others:  "Other customers",
	noun:    "customers",
	xLabel:  "Transactions",
	yLabel:  "Total spent ($)",
	rule: database.SegmentRule{
		Dataset:           database.TopCustomers,
		LabelColumn:       "cliente",
		FrequencyColumn:   "total_transacciones",
		FrequencyQuantile: 0.50,
		ValueColumn:       "total_gastado",
		ValueQuantile:     0.75,
	},
}

var filmSegment = segmentDef{
	id:      "strategic_films",
	title:   "Strategic films: high revenue with few rentals",
	caption: "These films earn a lot from few rentals. They may be premium or niche titles worth a distribution strategy of their own.",
	flagged: "Strategic films",
	others:  "Other films",
	noun:    "films",
	xLabel:  "Rentals",
	yLabel:  "Total revenue ($)",
	rule: database.SegmentRule{
		Dataset:           database.TopFilms,
		LabelColumn:       "pelicula",
		FrequencyColumn:   "total_alquileres",
		FrequencyQuantile: 0.35,
		ValueColumn:       "total_ingresos",
		ValueQuantile:     0.75,
	},
}

// addSegment runs a segmentation and adds its scatter chart and summary.
func addSegment(t *tabContext, def segmentDef) error {
	rule := def.rule
	if !t.needs(def.id, rule.LabelColumn, rule.FrequencyColumn, rule.ValueColumn) {
		return nil
	}

	res, err := t.store.Segment(t.ctx, rule)
	if err != nil {
		return err
	}

	flagged := models.Series{Name: def.flagged, Points: []models.Point{}}
	others := models.Series{Name: def.others, Points: []models.Point{}}
	table := &models.Table{
		Columns: []string{rule.LabelColumn, rule.FrequencyColumn, rule.ValueColumn},
		Rows:    [][]interface{}{},
	}
	for _, row := range res.Rows {
		if row.Flagged {
			table.Rows = append(table.Rows, []interface{}{row.Label, row.Frequency, row.Value})
		}
		if !row.Complete {
			continue
		}
		p := models.Point{Label: row.Label, X: row.Frequency, Y: row.Value}
		if row.Flagged {
			flagged.Points = append(flagged.Points, p)
		} else {
			others.Points = append(others.Points, p)
		}
	}

	t.addChart(models.Chart{
		ID:      def.id,
		Kind:    models.ChartScatter,
		Title:   def.title,
		XLabel:  def.xLabel,
		YLabel:  def.yLabel,
		Caption: def.caption,
		Series:  []models.Series{flagged, others},
	})

	t.report.Segments = append(t.report.Segments, models.SegmentSummary{
		ID:                 def.id,
		Title:              def.flagged,
		Segment:            def.flagged,
		FrequencyColumn:    rule.FrequencyColumn,
		FrequencyThreshold: res.FrequencyThreshold,
		ValueColumn:        rule.ValueColumn,
		ValueThreshold:     res.ValueThreshold,
		Count:              int64(res.Count()),
		Total:              int64(res.Total()),
		Percent:            res.Percent(),
		Summary: fmt.Sprintf("These %d %s represent about %s of the total.",
			res.Count(), def.noun, formatPercent(res.Percent())),
		Table: table,
	})
	return nil
}
