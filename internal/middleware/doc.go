// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

/*
Package middleware provides the HTTP middleware shared by the dashboard routes.

  - RequestID: accepts or generates X-Request-ID and seeds the logging context
    with request and correlation IDs
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern so that path parameters do not explode cardinality
  - RequestLogger: one structured log line per request, raised to warn for
    slow requests

All middleware has the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(2 * time.Second))
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
