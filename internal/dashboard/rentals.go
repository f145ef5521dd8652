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

// Weekdays is the display order of the weekday chart.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func buildRentals(_ *Builder, t *tabContext) error {
	t.addKPI(models.KPICard{
		ID:    "total_rentals",
		Label: "Total rentals",
		Value: formatCount(float64(t.store.RowCount(t.ds))),
		Raw:   float64(t.store.RowCount(t.ds)),
	})

	if t.needs("unique_categories", "categoria") {
		n, _, err := t.store.Aggregate(t.ctx, t.ds, database.AggCountDistinct, "categoria")
		if err != nil {
			return err
		}
		t.addKPI(models.KPICard{ID: "unique_categories", Label: "Unique categories", Value: formatCount(n), Raw: n})
	}

	if t.needs("weekday_kpis", "weekday") {
		counts, err := t.store.ValueCounts(t.ctx, t.ds, "weekday", database.ByCountDesc)
		if err != nil {
			return err
		}
		if len(counts) > 0 {
			busiest, quietest := counts[0], counts[0]
			for _, c := range counts[1:] {
				if c.Value < quietest.Value {
					quietest = c
				}
			}
			t.addKPI(models.KPICard{
				ID:    "busiest_weekday",
				Label: "Busiest weekday",
				Value: fmt.Sprintf("%s (%s)", busiest.Label, formatCount(busiest.Value)),
				Raw:   busiest.Value,
			})
			t.addKPI(models.KPICard{
				ID:    "quietest_weekday",
				Label: "Quietest weekday",
				Value: fmt.Sprintf("%s (%s)", quietest.Label, formatCount(quietest.Value)),
				Raw:   quietest.Value,
			})
		}
	}

	if t.needs("rentals_by_hour", "hour") {
		counts, err := t.store.ValueCounts(t.ctx, t.ds, "hour", database.ByKey)
		if err != nil {
			return err
		}
		labels, values := split(counts)
		caption := "No rentals with a recorded hour."
		if peak, ok := maxOf(counts); ok {
			caption = fmt.Sprintf("Rentals peak at hour %s with %s rentals.", peak.Label, formatCount(peak.Value))
		}
		t.addChart(models.Chart{
			ID:      "rentals_by_hour",
			Kind:    models.ChartBar,
			Title:   "Rental frequency by hour of day",
			XLabel:  "Hour",
			YLabel:  "Rentals",
			Caption: caption,
			Series:  []models.Series{{Name: "Rentals", Labels: labels, Values: values}},
		})
	}

	if t.needs("rentals_by_gender", "genero_estimado") {
		counts, err := t.store.ValueCounts(t.ctx, t.ds, "genero_estimado", database.ByCountDesc)
		if err != nil {
			return err
		}
		labels, values := split(counts)
		caption := "No rentals with an estimated gender."
		if len(counts) > 0 {
			caption = fmt.Sprintf("%s leads the gender estimate with %s of rentals.",
				counts[0].Label, formatPercent(share(counts[0].Value, sum(values))))
		}
		t.addChart(models.Chart{
			ID:      "rentals_by_gender",
			Kind:    models.ChartBar,
			Title:   "Rentals by estimated gender",
			XLabel:  "Gender",
			YLabel:  "Rentals",
			Caption: caption,
			Series:  []models.Series{{Name: "Rentals", Labels: labels, Values: values}},
		})
	}

	if t.needs("categories_by_gender", "categoria", "genero_estimado") {
		cells, err := t.store.CrossCounts(t.ctx, t.ds, "categoria", "genero_estimado")
		if err != nil {
			return err
		}
		m := pivotCells(cells)
		series := make([]models.Series, len(m.Columns))
		for j, gender := range m.Columns {
			series[j] = models.Series{Name: gender, Labels: m.Rows, Values: column(m, j)}
		}
		caption := "No categorised rentals."
		if top, ok := maxOf(rowTotals(m)); ok {
			caption = fmt.Sprintf("%s is the most rented category with %s rentals.", top.Label, formatCount(top.Value))
		}
		t.addChart(models.Chart{
			ID:      "categories_by_gender",
			Kind:    models.ChartGroupedBar,
			Title:   "Categories by estimated gender",
			XLabel:  "Category",
			YLabel:  "Rentals",
			Caption: caption,
			Series:  series,
		})
	}

	if t.needs("rentals_by_weekday", "weekday") {
		counts, err := t.store.ValueCounts(t.ctx, t.ds, "weekday", database.ByCountDesc)
		if err != nil {
			return err
		}
		ordered := weekdayOrder(counts)
		labels, values := split(ordered)
		caption := "No rentals with a recorded weekday."
		if peak, ok := maxOf(ordered); ok && peak.Value > 0 {
			caption = fmt.Sprintf("%s is the busiest day of the week with %s rentals.", peak.Label, formatCount(peak.Value))
		}
		t.addChart(models.Chart{
			ID:      "rentals_by_weekday",
			Kind:    models.ChartHBar,
			Title:   "Rentals by day of week",
			XLabel:  "Rentals",
			YLabel:  "Day",
			Caption: caption,
			Series:  []models.Series{{Name: "Rentals", Labels: labels, Values: values}},
		})
	}
	return nil
}

// weekdayOrder reindexes counts Monday through Sunday. Missing days count
// zero; labels that are not weekday names are dropped.
func weekdayOrder(counts []database.LabelValue) []database.LabelValue {
	byDay := make(map[string]float64, len(counts))
	for _, c := range counts {
		byDay[c.Label] = c.Value
	}
	out := make([]database.LabelValue, len(Weekdays))
	for i, day := range Weekdays {
		out[i] = database.LabelValue{Label: day, Value: byDay[day]}
	}
	return out
}
