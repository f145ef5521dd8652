// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

/*
Package api serves the rental dashboard over HTTP.

Routes are registered on a chi router (see Router.SetupChi):

	GET /                        HTML dashboard page (Plotly charts)
	GET /api/v1/health           overall status
	GET /api/v1/health/live      liveness probe
	GET /api/v1/health/ready     readiness probe, 503 until datasets are loaded
	GET /api/v1/tabs             tab index
	GET /api/v1/tabs/{tab}       one tab report, ?preview=N raw rows (0-100)
	GET /api/v1/datasets         loaded CSV files with row counts and columns
	GET /metrics                 Prometheus metrics

Every JSON response uses the models.APIResponse envelope. Errors carry one of
the codes VALIDATION_ERROR (400), NOT_FOUND (404), METHOD_NOT_ALLOWED (405),
DATABASE_ERROR (500) or SERVICE_ERROR (503).

Tab reports are recomputed on every request; responses are sent with
Cache-Control: no-store.

Usage:

	handler := api.NewHandler(db, dashboard.NewBuilder(db, opts), cfg)
	router := api.NewRouter(handler, cfg)
	http.ListenAndServe(":8501", router.SetupChi())
*/
package api
