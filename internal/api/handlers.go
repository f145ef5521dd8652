// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package api

import (
	"context"
	"time"

	"github.com/tomtom215/rentalytics/internal/config"
	"github.com/tomtom215/rentalytics/internal/database"
	"github.com/tomtom215/rentalytics/internal/models"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// DatasetStore is the part of *database.DB the handlers need directly.
type DatasetStore interface {
	Ping(ctx context.Context) error
	Loaded() bool
	Columns(ds database.Dataset) []string
	RowCount(ds database.Dataset) int64
}

// TabBuilder computes tab reports. *dashboard.Builder implements it.
type TabBuilder interface {
	Build(ctx context.Context, tabID string, previewRows int) (*models.TabReport, error)
}

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	db        DatasetStore
	builder   TabBuilder
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a Handler.
func NewHandler(db DatasetStore, builder TabBuilder, cfg *config.Config) *Handler {
	return &Handler{
		db:        db,
		builder:   builder,
		config:    cfg,
		startTime: time.Now(),
	}
}

// defaultPreviewRows is the preview size when the request does not set one.
func (h *Handler) defaultPreviewRows() int {
	if h.config == nil {
		return 5
	}
	return h.config.Dataset.PreviewRows
}
