// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

/*
Package dashboard assembles the five analysis tabs from the loaded datasets.

Each tab is a models.TabReport holding a raw-row preview, KPI cards, charts
with a short insight caption and, for customers and films, a quantile
segment summary:

  - rentals: rental detail (hours, gender, categories, weekdays)
  - monthly: rentals per month and category (trend, top 4, seasonality)
  - customers: most frequent customers (top spenders, frequency vs spend)
  - films: most profitable films (top revenue, top rentals)
  - revenue: revenue per store and category (top 5, share heatmap)

A block whose columns are missing from the dataset is skipped and listed in
TabReport.Skipped; it never fails the tab. Nothing is cached: every Build
recomputes the tab from the store.
*/
package dashboard
