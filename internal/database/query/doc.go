// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

// Package query builds SQL fragments for the dataset store.
//
// The store queries CSV-backed tables whose cells may be empty or
// non-numeric, so most aggregates first drop rows whose label or numeric
// view is NULL. WhereBuilder assembles those filters:
//
//	where := query.NewWhereBuilder().
//	    AddNotNull(`"categoria"`, `TRY_CAST("ingresos" AS DOUBLE)`).
//	    BuildWithPrefix()
//	// WHERE "categoria" IS NOT NULL AND TRY_CAST("ingresos" AS DOUBLE) IS NOT NULL
//
// Expressions passed to AddNotNull are inserted verbatim; callers quote
// identifiers themselves.
package query
