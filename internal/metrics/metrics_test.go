// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package metrics

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

func TestRecordDBQuery(t *testing.T) {
	longErr := errors.New(strings.Repeat("x", 80))

	tests := []struct {
		name      string
		operation string
		table     string
		err       error
		wantLabel string
	}{
		{"successful preview", "preview", "detalle_alquileres", nil, ""},
		{"failed segment", "segment", "clientes_mas_frecuentes", errors.New("binder error"), "binder error"},
		{"long error truncated", "load", "peliculas_mas_rentables", longErr, strings.Repeat("x", 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordDBQuery(tt.operation, tt.table, 10*time.Millisecond, tt.err)

			if tt.err == nil {
				return
			}
			got := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, tt.table, tt.wantLabel))
			if got < 1 {
				t.Errorf("DBQueryErrors{%s,%s,%q} = %v, want >= 1", tt.operation, tt.table, tt.wantLabel, got)
			}
		})
	}
}

func TestSetDatasetRows(t *testing.T) {
	SetDatasetRows("ingresos_por_tienda_categoria", 32)

	var m io_prometheus_client.Metric
	if err := DatasetRows.WithLabelValues("ingresos_por_tienda_categoria").Write(&m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got := m.GetGauge().GetValue(); got != 32 {
		t.Errorf("DatasetRows = %v, want 32", got)
	}
}

func TestRecordDatasetLoad(t *testing.T) {
	before := testutil.ToFloat64(DatasetLoadErrors)

	RecordDatasetLoad(time.Second, nil)
	RecordDatasetLoad(time.Second, errors.New("missing file"))

	if got := testutil.ToFloat64(DatasetLoadErrors); got != before+1 {
		t.Errorf("DatasetLoadErrors = %v, want %v", got, before+1)
	}
}

func TestRecordBlockSkipped(t *testing.T) {
	before := testutil.ToFloat64(BlocksSkipped.WithLabelValues("rentals", "hour_frequency"))
	RecordBlockSkipped("rentals", "hour_frequency")
	RecordBlockSkipped("rentals", "hour_frequency")

	if got := testutil.ToFloat64(BlocksSkipped.WithLabelValues("rentals", "hour_frequency")); got != before+2 {
		t.Errorf("BlocksSkipped = %v, want %v", got, before+2)
	}

	RecordTabRender("rentals", 20*time.Millisecond)
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/tabs/{tab}", "200"))

	RecordAPIRequest("GET", "/api/v1/tabs/{tab}", "200", 5*time.Millisecond)

	got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/tabs/{tab}", "200"))
	if got != before+1 {
		t.Errorf("APIRequestsTotal = %v, want %v", got, before+1)
	}
}

func TestTrackActiveRequest_Concurrent(t *testing.T) {
	start := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != start {
		t.Errorf("APIActiveRequests = %v, want %v", got, start)
	}
}
