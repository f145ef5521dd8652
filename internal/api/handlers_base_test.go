// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/rentalytics/internal/config"
	"github.com/tomtom215/rentalytics/internal/database"
	"github.com/tomtom215/rentalytics/internal/models"
)

type fakeStore struct {
	loaded  bool
	pingErr error
	rows    map[database.Dataset]int64
	columns map[database.Dataset][]string
}

func (s *fakeStore) Ping(context.Context) error           { return s.pingErr }
func (s *fakeStore) Loaded() bool                         { return s.loaded }
func (s *fakeStore) RowCount(ds database.Dataset) int64   { return s.rows[ds] }
func (s *fakeStore) Columns(ds database.Dataset) []string { return s.columns[ds] }

type fakeBuilder struct {
	mu         sync.Mutex
	report     *models.TabReport
	err        error
	gotTab     string
	gotPreview int
	calls      int
}

func (b *fakeBuilder) Build(_ context.Context, tabID string, previewRows int) (*models.TabReport, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	b.gotTab, b.gotPreview = tabID, previewRows
	if b.err != nil {
		return nil, b.err
	}
	return b.report, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Dataset: config.DatasetConfig{Dir: ".", PreviewRows: 5},
		Server:  config.ServerConfig{Port: 8501, Timeout: 30 * time.Second, Environment: "development"},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
		},
		Logging: config.LoggingConfig{Level: "info", Format: "json"},
	}
}

func loadedStore() *fakeStore {
	return &fakeStore{
		loaded: true,
		rows: map[database.Dataset]int64{
			database.Rentals:      16044,
			database.TopFilms:     958,
			database.TopCustomers: 599,
		},
		columns: map[database.Dataset][]string{
			database.TopFilms: {"pelicula", "total_alquileres", "total_ingresos"},
		},
	}
}

func sampleReport() *models.TabReport {
	return &models.TabReport{
		TabInfo: models.TabInfo{ID: "films", Title: "Most Profitable Films", Dataset: "peliculas_mas_rentables"},
		Preview: &models.Table{Columns: []string{"pelicula"}, Rows: [][]interface{}{{"TELEGRAPH VOYAGE"}}},
		KPIs:    []models.KPICard{{ID: "total_films", Label: "Total films", Value: "958", Raw: 958}},
		Charts:  []models.Chart{},
	}
}

// setupRouter returns the full chi handler over fakes.
func setupRouter(t *testing.T, store *fakeStore, builder *fakeBuilder, cfg *config.Config) http.Handler {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	return NewRouter(NewHandler(store, builder, cfg), cfg).SetupChi()
}

type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func doRequest(t *testing.T, h http.Handler, method, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s %s: %v\n%s", method, target, err, rec.Body.String())
		}
	}
	return rec, env
}

var errQueryFailed = errors.New("binder error: boom")
