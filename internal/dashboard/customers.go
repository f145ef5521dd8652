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

const (
	topSpenders     = 10
	topTransactions = 15
)

func buildCustomers(_ *Builder, t *tabContext) error {
	t.addKPI(models.KPICard{
		ID:    "total_customers",
		Label: "Total customers",
		Value: formatCount(float64(t.store.RowCount(t.ds))),
		Raw:   float64(t.store.RowCount(t.ds)),
	})

	var revenue float64
	if t.needs("total_revenue", "total_gastado") {
		total, _, err := t.store.Aggregate(t.ctx, t.ds, database.AggSum, "total_gastado")
		if err != nil {
			return err
		}
		revenue = total
		t.addKPI(models.KPICard{ID: "total_revenue", Label: "Total revenue", Value: formatMoney(total), Raw: total})
	}

	if t.needs("top_spender", "cliente", "total_gastado") {
		top, err := t.store.Max(t.ctx, t.ds, "total_gastado", "cliente")
		if err != nil {
			return err
		}
		if top != nil {
			t.addKPI(models.KPICard{
				ID:    "top_spender",
				Label: "Top spender",
				Value: fmt.Sprintf("%s (%s)", top.Labels[0], formatMoney(top.Value)),
				Raw:   top.Value,
			})
		}
	}

	if t.needs("most_frequent_customer", "cliente", "total_transacciones") {
		top, err := t.store.Max(t.ctx, t.ds, "total_transacciones", "cliente")
		if err != nil {
			return err
		}
		if top != nil {
			t.addKPI(models.KPICard{
				ID:    "most_frequent_customer",
				Label: "Most frequent customer",
				Value: fmt.Sprintf("%s (%s transactions)", top.Labels[0], formatCount(top.Value)),
				Raw:   top.Value,
			})
		}
	}

	if t.needs("top_spenders", "cliente", "total_gastado") {
		top, err := topCustomers(t, "total_gastado", topSpenders)
		if err != nil {
			return err
		}
		labels, values := split(top)
		caption := fmt.Sprintf("These %d customers generated the most revenue.", len(top))
		if revenue > 0 {
			caption = fmt.Sprintf("These %d customers generated %s, %s of all revenue.",
				len(top), formatMoney(sum(values)), formatPercent(share(sum(values), revenue)))
		}
		t.addChart(models.Chart{
			ID:      "top_spenders",
			Kind:    models.ChartHBar,
			Title:   fmt.Sprintf("Top %d customers by spend", topSpenders),
			XLabel:  "Total spent ($)",
			YLabel:  "Customer",
			Caption: caption,
			Series:  []models.Series{{Name: "Total spent", Labels: labels, Values: values}},
		})
	}

	if t.needs("top_transactions", "cliente", "total_transacciones") {
		top, err := topCustomers(t, "total_transacciones", topTransactions)
		if err != nil {
			return err
		}
		labels, values := split(top)
		t.addChart(models.Chart{
			ID:      "top_transactions",
			Kind:    models.ChartBar,
			Title:   fmt.Sprintf("Top %d customers by transactions", topTransactions),
			XLabel:  "Customer",
			YLabel:  "Transactions",
			Caption: "Customers with the most transactions point to loyalty and repeat business.",
			Series:  []models.Series{{Name: "Transactions", Labels: labels, Values: values}},
		})
	}

	if t.needs("frequency_vs_spend", "cliente", "total_transacciones", "total_gastado") {
		points, err := t.store.Points(t.ctx, t.ds, "cliente", "total_transacciones", "total_gastado")
		if err != nil {
			return err
		}
		t.addChart(models.Chart{
			ID:      "frequency_vs_spend",
			Kind:    models.ChartScatter,
			Title:   "Transactions vs total spent",
			XLabel:  "Transactions",
			YLabel:  "Total spent ($)",
			Caption: "Each point is one customer. The slope shows how spend follows rental frequency.",
			Series:  []models.Series{{Name: "Customers", Points: toPoints(points)}},
		})
	}

	return addSegment(t, customerSegment)
}

// topCustomers ranks customers by metric. Rows are told apart by
// customer_id when the file has it; otherwise by name.
func topCustomers(t *tabContext, metric string, n int) ([]database.LabelValue, error) {
	if t.store.HasColumns(t.ds, "customer_id") {
		return t.store.TopNByKey(t.ctx, t.ds, "customer_id", "cliente", metric, n)
	}
	return t.store.TopN(t.ctx, t.ds, "cliente", metric, n)
}

func toPoints(points []database.Point) []models.Point {
	out := make([]models.Point, len(points))
	for i, p := range points {
		out[i] = models.Point{Label: p.Label, X: p.X, Y: p.Y}
	}
	return out
}
