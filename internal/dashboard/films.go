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

const topFilms = 8

func buildFilms(_ *Builder, t *tabContext) error {
	t.addKPI(models.KPICard{
		ID:    "total_films",
		Label: "Total films",
		Value: formatCount(float64(t.store.RowCount(t.ds))),
		Raw:   float64(t.store.RowCount(t.ds)),
	})

	if t.needs("mean_revenue", "total_ingresos") {
		mean, _, err := t.store.Aggregate(t.ctx, t.ds, database.AggMean, "total_ingresos")
		if err != nil {
			return err
		}
		t.addKPI(models.KPICard{ID: "mean_revenue", Label: "Mean revenue", Value: formatMoney(mean), Raw: mean})
	}

	if t.needs("top_revenue_film", "pelicula", "total_ingresos") {
		top, err := t.store.Max(t.ctx, t.ds, "total_ingresos", "pelicula")
		if err != nil {
			return err
		}
		if top != nil {
			t.addKPI(models.KPICard{
				ID:    "top_revenue_film",
				Label: "Highest-grossing film",
				Value: fmt.Sprintf("%s (%s)", top.Labels[0], formatMoney(top.Value)),
				Raw:   top.Value,
			})
		}
	}

	if t.needs("most_rented_film", "pelicula", "total_alquileres") {
		top, err := t.store.Max(t.ctx, t.ds, "total_alquileres", "pelicula")
		if err != nil {
			return err
		}
		if top != nil {
			t.addKPI(models.KPICard{
				ID:    "most_rented_film",
				Label: "Most rented film",
				Value: fmt.Sprintf("%s (%s rentals)", top.Labels[0], formatCount(top.Value)),
				Raw:   top.Value,
			})
		}
	}

	if t.needs("top_films_by_revenue", "pelicula", "total_ingresos") {
		top, err := t.store.TopN(t.ctx, t.ds, "pelicula", "total_ingresos", topFilms)
		if err != nil {
			return err
		}
		labels, values := split(top)
		t.addChart(models.Chart{
			ID:      "top_films_by_revenue",
			Kind:    models.ChartHBar,
			Title:   fmt.Sprintf("Top %d films by total revenue", topFilms),
			XLabel:  "Total revenue ($)",
			YLabel:  "Film",
			Caption: fmt.Sprintf("These %d films generated the highest total revenue.", len(top)),
			Series:  []models.Series{{Name: "Total revenue", Labels: labels, Values: values}},
		})
	}

	if t.needs("top_films_by_rentals", "pelicula", "total_alquileres") {
		top, err := t.store.TopN(t.ctx, t.ds, "pelicula", "total_alquileres", topFilms)
		if err != nil {
			return err
		}
		labels, values := split(top)
		t.addChart(models.Chart{
			ID:      "top_films_by_rentals",
			Kind:    models.ChartBar,
			Title:   fmt.Sprintf("Top %d films by number of rentals", topFilms),
			XLabel:  "Film",
			YLabel:  "Rentals",
			Caption: "The most rented titles of the catalogue reflect what customers keep coming back for.",
			Series:  []models.Series{{Name: "Rentals", Labels: labels, Values: values}},
		})
	}

	return addSegment(t, filmSegment)
}
