// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

// Package models defines the API envelope and the dashboard payloads
// (tabs, KPI cards, charts, segment summaries) shared by the dashboard
// builder and the HTTP layer.
package models
