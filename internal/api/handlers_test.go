// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/rentalytics/internal/dashboard"
	"github.com/tomtom215/rentalytics/internal/database"
	"github.com/tomtom215/rentalytics/internal/models"
)

func TestHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		store  *fakeStore
		status string
		loaded bool
	}{
		{"loaded", loadedStore(), "healthy", true},
		{"not loaded", &fakeStore{}, "degraded", false},
		{"ping fails", &fakeStore{loaded: true, pingErr: errors.New("closed")}, "degraded", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := setupRouter(t, tt.store, &fakeBuilder{}, nil)
			rec, env := doRequest(t, h, http.MethodGet, "/api/v1/health")

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			var health models.HealthStatus
			if err := json.Unmarshal(env.Data, &health); err != nil {
				t.Fatal(err)
			}
			if health.Status != tt.status {
				t.Errorf("health status = %q, want %q", health.Status, tt.status)
			}
			if health.DatasetsLoaded != tt.loaded {
				t.Errorf("datasets_loaded = %v, want %v", health.DatasetsLoaded, tt.loaded)
			}
			if health.Version != Version {
				t.Errorf("version = %q, want %q", health.Version, Version)
			}
		})
	}
}

func TestHealthLive(t *testing.T) {
	t.Parallel()

	h := setupRouter(t, &fakeStore{}, &fakeBuilder{}, nil)
	rec, env := doRequest(t, h, http.MethodGet, "/api/v1/health/live")
	if rec.Code != http.StatusOK || env.Status != "success" {
		t.Errorf("live = %d %q, want 200 success", rec.Code, env.Status)
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	t.Run("ready", func(t *testing.T) {
		t.Parallel()
		rec, env := doRequest(t, setupRouter(t, loadedStore(), &fakeBuilder{}, nil), http.MethodGet, "/api/v1/health/ready")
		if rec.Code != http.StatusOK || env.Status != "ready" {
			t.Errorf("ready = %d %q, want 200 ready", rec.Code, env.Status)
		}
	})

	t.Run("not loaded", func(t *testing.T) {
		t.Parallel()
		rec, env := doRequest(t, setupRouter(t, &fakeStore{}, &fakeBuilder{}, nil), http.MethodGet, "/api/v1/health/ready")
		if rec.Code != http.StatusServiceUnavailable || env.Status != "not_ready" {
			t.Errorf("ready = %d %q, want 503 not_ready", rec.Code, env.Status)
		}
	})
}

func TestTabs(t *testing.T) {
	t.Parallel()

	rec, env := doRequest(t, setupRouter(t, loadedStore(), &fakeBuilder{}, nil), http.MethodGet, "/api/v1/tabs")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var tabs []models.TabInfo
	if err := json.Unmarshal(env.Data, &tabs); err != nil {
		t.Fatal(err)
	}
	want := []string{dashboard.TabRentals, dashboard.TabMonthly, dashboard.TabCustomers, dashboard.TabFilms, dashboard.TabRevenue}
	if len(tabs) != len(want) {
		t.Fatalf("got %d tabs, want %d", len(tabs), len(want))
	}
	for i, id := range want {
		if tabs[i].ID != id {
			t.Errorf("tabs[%d] = %q, want %q", i, tabs[i].ID, id)
		}
	}
}

func TestTab_Success(t *testing.T) {
	t.Parallel()

	builder := &fakeBuilder{report: sampleReport()}
	h := setupRouter(t, loadedStore(), builder, nil)

	rec, env := doRequest(t, h, http.MethodGet, "/api/v1/tabs/films?preview=3")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", got)
	}
	if builder.gotTab != "films" || builder.gotPreview != 3 {
		t.Errorf("Build(%q, %d), want (films, 3)", builder.gotTab, builder.gotPreview)
	}

	var report models.TabReport
	if err := json.Unmarshal(env.Data, &report); err != nil {
		t.Fatal(err)
	}
	if report.ID != "films" || len(report.KPIs) != 1 || report.KPIs[0].Value != "958" {
		t.Errorf("unexpected report: %+v", report)
	}
}

func TestTab_DefaultPreview(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Dataset.PreviewRows = 7
	builder := &fakeBuilder{report: sampleReport()}

	rec, _ := doRequest(t, setupRouter(t, loadedStore(), builder, cfg), http.MethodGet, "/api/v1/tabs/films")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if builder.gotPreview != 7 {
		t.Errorf("preview = %d, want configured default 7", builder.gotPreview)
	}
}

func TestTab_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		buildErr   error
		wantStatus int
		wantCode   string
		wantBuilt  bool
	}{
		{"preview not a number", "/api/v1/tabs/films?preview=abc", nil, http.StatusBadRequest, ErrCodeValidation, false},
		{"preview too large", "/api/v1/tabs/films?preview=101", nil, http.StatusBadRequest, ErrCodeValidation, false},
		{"preview negative", "/api/v1/tabs/films?preview=-1", nil, http.StatusBadRequest, ErrCodeValidation, false},
		{"tab id not alphabetic", "/api/v1/tabs/films-2", nil, http.StatusBadRequest, ErrCodeValidation, false},
		{"unknown tab", "/api/v1/tabs/weather", fmt.Errorf("%w: %q", dashboard.ErrUnknownTab, "weather"), http.StatusNotFound, ErrCodeNotFound, true},
		{"not loaded", "/api/v1/tabs/films", database.ErrNotLoaded, http.StatusServiceUnavailable, ErrCodeService, true},
		{"query failure", "/api/v1/tabs/films", fmt.Errorf("build films: %w", errQueryFailed), http.StatusInternalServerError, ErrCodeDatabase, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			builder := &fakeBuilder{err: tt.buildErr, report: sampleReport()}
			rec, env := doRequest(t, setupRouter(t, loadedStore(), builder, nil), http.MethodGet, tt.target)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", env.Error, tt.wantCode)
			}
			if env.Status != "error" {
				t.Errorf("envelope status = %q, want error", env.Status)
			}
			if built := builder.calls > 0; built != tt.wantBuilt {
				t.Errorf("builder called = %v, want %v", built, tt.wantBuilt)
			}
		})
	}
}

func TestTab_ValidationDetails(t *testing.T) {
	t.Parallel()

	_, env := doRequest(t, setupRouter(t, loadedStore(), &fakeBuilder{}, nil), http.MethodGet, "/api/v1/tabs/films?preview=500")
	if env.Error == nil {
		t.Fatal("expected error body")
	}
	if env.Error.Details["field"] != "preview" {
		t.Errorf("details = %v, want field preview", env.Error.Details)
	}
	if !strings.Contains(env.Error.Message, "at most 100") {
		t.Errorf("message = %q", env.Error.Message)
	}
}

func TestDatasets(t *testing.T) {
	t.Parallel()

	rec, env := doRequest(t, setupRouter(t, loadedStore(), &fakeBuilder{}, nil), http.MethodGet, "/api/v1/datasets")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var infos []models.DatasetInfo
	if err := json.Unmarshal(env.Data, &infos); err != nil {
		t.Fatal(err)
	}
	if len(infos) != len(database.Datasets) {
		t.Fatalf("got %d datasets, want %d", len(infos), len(database.Datasets))
	}
	for _, info := range infos {
		if info.ID == string(database.TopFilms) {
			if info.File != "peliculas_mas_rentables_limpio.csv" || info.Rows != 958 || len(info.Columns) != 3 {
				t.Errorf("films dataset = %+v", info)
			}
		}
	}
}

func TestDatasets_NotLoaded(t *testing.T) {
	t.Parallel()

	rec, env := doRequest(t, setupRouter(t, &fakeStore{}, &fakeBuilder{}, nil), http.MethodGet, "/api/v1/datasets")
	if rec.Code != http.StatusServiceUnavailable || env.Error == nil || env.Error.Code != ErrCodeService {
		t.Errorf("got %d %+v, want 503 SERVICE_ERROR", rec.Code, env.Error)
	}
}

func TestIndex(t *testing.T) {
	t.Parallel()

	rec, _ := doRequest(t, setupRouter(t, loadedStore(), &fakeBuilder{}, nil), http.MethodGet, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	for _, tab := range dashboard.Tabs() {
		if !strings.Contains(body, `data-tab="`+tab.ID+`"`) {
			t.Errorf("page missing tab %s", tab.ID)
		}
	}
	if !strings.Contains(body, "plotly") {
		t.Error("page does not load Plotly")
	}
}
