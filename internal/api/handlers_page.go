// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/tomtom215/rentalytics/internal/dashboard"
	"github.com/tomtom215/rentalytics/internal/logging"
	"github.com/tomtom215/rentalytics/internal/models"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// indexData feeds templates/index.html.
type indexData struct {
	Title       string
	Tabs        []models.TabInfo
	PreviewRows int
}

// Index renders the dashboard page. Charts are fetched from the tab
// endpoint and drawn client-side.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := indexTemplate.Execute(&buf, indexData{
		Title:       "Sakila Rental Analytics",
		Tabs:        dashboard.Tabs(),
		PreviewRows: h.defaultPreviewRows(),
	})
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to render index page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(buf.Bytes()); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write index page")
	}
}
