// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package dashboard

import (
	"fmt"
	"math"

	"github.com/tomtom215/rentalytics/internal/database"
	"github.com/tomtom215/rentalytics/internal/logging"
	"github.com/tomtom215/rentalytics/internal/models"
)

const topRevenueCategories = 5

func buildRevenue(b *Builder, t *tabContext) error {
	if t.needs("stores", "store_id") {
		n, _, err := t.store.Aggregate(t.ctx, t.ds, database.AggCountDistinct, "store_id")
		if err != nil {
			return err
		}
		t.addKPI(models.KPICard{ID: "stores", Label: "Stores analysed", Value: formatCount(n), Raw: n})
	}

	if t.needs("categories", "categoria") {
		n, _, err := t.store.Aggregate(t.ctx, t.ds, database.AggCountDistinct, "categoria")
		if err != nil {
			return err
		}
		t.addKPI(models.KPICard{ID: "categories", Label: "Distinct categories", Value: formatCount(n), Raw: n})
	}

	if t.needs("leading_category", "categoria", "ingresos", "store_id") {
		top, err := t.store.Max(t.ctx, t.ds, "ingresos", "categoria", "store_id")
		if err != nil {
			return err
		}
		if top != nil {
			t.addKPI(models.KPICard{
				ID:     "leading_category",
				Label:  "Leading category",
				Value:  fmt.Sprintf("%s (%s)", top.Labels[0], formatMoney(top.Value)),
				Raw:    top.Value,
				Detail: "Store " + top.Labels[1],
			})
		}
	}

	if t.needs("revenue_by_store", "store_id", "categoria", "ingresos") {
		if err := buildRevenueByStore(t); err != nil {
			return err
		}
	}

	if t.needs("revenue_share_heatmap", "categoria", "store_id", "pct_ingreso_tienda") {
		if err := buildShareHeatmap(b, t); err != nil {
			return err
		}
	}
	return nil
}

// buildRevenueByStore compares the revenue of the top categories in each store.
func buildRevenueByStore(t *tabContext) error {
	top, err := t.store.TopGroups(t.ctx, t.ds, "categoria", "ingresos", topRevenueCategories)
	if err != nil {
		return err
	}
	cells, err := t.store.Pivot(t.ctx, t.ds, "store_id", "categoria", "ingresos", database.AggSum)
	if err != nil {
		return err
	}

	cats := labelsOf(top)
	series := []models.Series{}
	caption := "No revenue recorded."
	if len(cats) > 0 {
		m := pivotCells(cells, cats...)
		for j, cat := range cats {
			series = append(series, models.Series{Name: cat, Labels: m.Rows, Values: column(m, j)})
		}
		caption = fmt.Sprintf("%s leads overall with %s across stores. Compare the bars to spot each store's strengths.",
			top[0].Label, formatMoney(top[0].Value))
	}

	t.addChart(models.Chart{
		ID:      "revenue_by_store",
		Kind:    models.ChartGroupedBar,
		Title:   fmt.Sprintf("Revenue by store, top %d categories", topRevenueCategories),
		XLabel:  "Store",
		YLabel:  "Revenue ($)",
		Caption: caption,
		Series:  series,
	})
	return nil
}

// buildShareHeatmap shows each category's share of its store's revenue and
// warns when a store's shares do not add up to 100.
func buildShareHeatmap(b *Builder, t *tabContext) error {
	cells, err := t.store.Pivot(t.ctx, t.ds, "categoria", "store_id", "pct_ingreso_tienda", database.AggMean)
	if err != nil {
		return err
	}
	m := pivotCells(cells)
	for i := range m.Values {
		for j := range m.Values[i] {
			m.Values[i][j] = round1(m.Values[i][j])
		}
	}

	totals, err := t.store.GroupBy(t.ctx, t.ds, "store_id", "pct_ingreso_tienda", database.AggSum, "store_id")
	if err != nil {
		return err
	}
	for _, st := range totals {
		if math.Abs(st.Value-100) > b.opts.ShareTolerance {
			logging.Ctx(t.ctx).Warn().
				Str("store_id", st.Label).
				Float64("total_pct", st.Value).
				Msg("Store revenue shares do not sum to 100")
		}
	}

	t.addChart(models.Chart{
		ID:      "revenue_share_heatmap",
		Kind:    models.ChartHeatmap,
		Title:   "Revenue share by category and store (%)",
		XLabel:  "Store",
		YLabel:  "Category",
		Caption: "Each cell is the share of a category in its store's total revenue.",
		Matrix:  m,
	})
	return nil
}
