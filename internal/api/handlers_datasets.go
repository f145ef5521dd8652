// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/rentalytics/internal/database"
	"github.com/tomtom215/rentalytics/internal/models"
)

// Datasets lists every loaded CSV with its row count and columns.
func (h *Handler) Datasets(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.db.Loaded() {
		respondStoreError(w, r, database.ErrNotLoaded)
		return
	}

	infos := make([]models.DatasetInfo, 0, len(database.Datasets))
	for _, ds := range database.Datasets {
		infos = append(infos, models.DatasetInfo{
			ID:      string(ds),
			File:    ds.FileName(),
			Rows:    h.db.RowCount(ds),
			Columns: h.db.Columns(ds),
		})
	}
	respondSuccess(w, infos, start)
}
