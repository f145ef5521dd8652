// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package dashboard

import (
	"fmt"
	"strings"

	"github.com/tomtom215/rentalytics/internal/database"
	"github.com/tomtom215/rentalytics/internal/models"
)

const topAreaCategories = 4

func buildMonthly(_ *Builder, t *tabContext) error {
	if t.needs("months_analysed", "mes") {
		n, _, err := t.store.Aggregate(t.ctx, t.ds, database.AggCountDistinct, "mes")
		if err != nil {
			return err
		}
		t.addKPI(models.KPICard{ID: "months_analysed", Label: "Months analysed", Value: formatCount(n), Raw: n})
	}

	if t.needs("total_rentals", "total_alquileres") {
		total, _, err := t.store.Aggregate(t.ctx, t.ds, database.AggSum, "total_alquileres")
		if err != nil {
			return err
		}
		t.addKPI(models.KPICard{ID: "total_rentals", Label: "Total rentals", Value: formatCount(total), Raw: total})
	}

	if t.needs("mean_monthly_rentals", "total_global_mes") {
		mean, _, err := t.store.Aggregate(t.ctx, t.ds, database.AggMean, "total_global_mes")
		if err != nil {
			return err
		}
		t.addKPI(models.KPICard{ID: "mean_monthly_rentals", Label: "Mean monthly rentals", Value: formatDecimal(mean), Raw: mean})
	}

	if t.needs("peak_month", "nombre_mes", "total_global_mes") {
		peak, err := t.store.Max(t.ctx, t.ds, "total_global_mes", "nombre_mes")
		if err != nil {
			return err
		}
		if peak != nil {
			t.addKPI(models.KPICard{
				ID:    "peak_month",
				Label: "Peak month",
				Value: fmt.Sprintf("%s (%s)", peak.Labels[0], formatCount(peak.Value)),
				Raw:   peak.Value,
			})
		}
	}

	if t.needs("monthly_trend", "mes", "total_global_mes") {
		trend, err := t.store.FirstPerGroup(t.ctx, t.ds, "mes", "total_global_mes")
		if err != nil {
			return err
		}
		labels, values := split(trend)
		caption := "No monthly totals available."
		if len(trend) > 0 {
			first, last := trend[0], trend[len(trend)-1]
			caption = fmt.Sprintf("Monthly rentals went from %s in %s to %s in %s.",
				formatCount(first.Value), first.Label, formatCount(last.Value), last.Label)
		}
		t.addChart(models.Chart{
			ID:      "monthly_trend",
			Kind:    models.ChartLine,
			Title:   "Global rental trend by month",
			XLabel:  "Month",
			YLabel:  "Total rentals",
			Caption: caption,
			Series:  []models.Series{{Name: "Total rentals", Labels: labels, Values: values}},
		})
	}

	if t.needs("top_categories_area", "mes", "categoria", "total_alquileres") {
		if err := buildTopCategoriesArea(t); err != nil {
			return err
		}
	}

	if t.needs("seasonality", "nombre_mes", "num_mes", "total_alquileres") {
		means, err := t.store.GroupBy(t.ctx, t.ds, "nombre_mes", "total_alquileres", database.AggMean, "num_mes")
		if err != nil {
			return err
		}
		labels, values := split(means)
		caption := "No calendar months available."
		if peak, ok := maxOf(means); ok {
			caption = fmt.Sprintf("%s has the highest average with %s rentals per category.", peak.Label, formatDecimal(peak.Value))
		}
		t.addChart(models.Chart{
			ID:      "seasonality",
			Kind:    models.ChartBar,
			Title:   "Average rentals per calendar month (seasonality)",
			XLabel:  "Month",
			YLabel:  "Average rentals",
			Caption: caption,
			Series:  []models.Series{{Name: "Average rentals", Labels: labels, Values: values}},
		})
	}
	return nil
}

// buildTopCategoriesArea charts the monthly rentals of the categories with
// the most rentals overall, one stacked series per category.
func buildTopCategoriesArea(t *tabContext) error {
	top, err := t.store.TopGroups(t.ctx, t.ds, "categoria", "total_alquileres", topAreaCategories)
	if err != nil {
		return err
	}
	cells, err := t.store.Pivot(t.ctx, t.ds, "mes", "categoria", "total_alquileres", database.AggSum)
	if err != nil {
		return err
	}

	cats := labelsOf(top)
	series := []models.Series{}
	caption := "No categories available."
	if len(cats) > 0 {
		// Months come from every cell so that a month without any top
		// category still shows as zero.
		months := pivotCells(cells).Rows
		m := pivotCells(cells, cats...)
		byMonth := make(map[string][]float64, len(m.Rows))
		for i, month := range m.Rows {
			byMonth[month] = m.Values[i]
		}
		for j, cat := range cats {
			values := make([]float64, len(months))
			for i, month := range months {
				if row, ok := byMonth[month]; ok {
					values[i] = row[j]
				}
			}
			series = append(series, models.Series{Name: cat, Labels: months, Values: values})
		}

		all := 0.0
		for _, c := range cells {
			all += c.Value
		}
		_, topValues := split(top)
		caption = fmt.Sprintf("The top %d categories (%s) account for %s of all rentals.",
			len(cats), strings.Join(cats, ", "), formatPercent(share(sum(topValues), all)))
	}

	t.addChart(models.Chart{
		ID:      "top_categories_area",
		Kind:    models.ChartArea,
		Title:   fmt.Sprintf("Share of the top %d categories in rentals", topAreaCategories),
		XLabel:  "Month",
		YLabel:  "Total rentals",
		Caption: caption,
		Series:  series,
	})
	return nil
}
