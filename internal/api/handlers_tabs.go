// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/rentalytics/internal/dashboard"
	"github.com/tomtom215/rentalytics/internal/logging"
)

// Tabs lists the dashboard tabs in display order.
func (h *Handler) Tabs(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, dashboard.Tabs(), time.Now())
}

// Tab computes one tab report: preview rows, KPI cards, charts and segments.
func (h *Handler) Tab(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, apiErr := parseTabRequest(r, h.defaultPreviewRows())
	if apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	report, err := h.builder.Build(r.Context(), req.Tab, req.Preview)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("tab", req.Tab).
		Int("charts", len(report.Charts)).
		Int("skipped", len(report.Skipped)).
		Dur("duration", time.Since(start)).
		Msg("Tab rendered")

	respondSuccess(w, report, start)
}
