// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	// Dataset Metrics
	DatasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rentalytics_dataset_rows",
			Help: "Number of rows loaded per dataset",
		},
		[]string{"dataset"},
	)

	DatasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rentalytics_dataset_load_duration_seconds",
			Help:    "Time spent loading all datasets into DuckDB",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	DatasetLoadErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rentalytics_dataset_load_errors_total",
			Help: "Total number of failed dataset loads",
		},
	)

	// Dashboard Metrics
	TabRenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rentalytics_tab_render_duration_seconds",
			Help:    "Time spent computing one dashboard tab",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"tab"},
	)

	BlocksSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rentalytics_blocks_skipped_total",
			Help: "Charts and KPI cards skipped because their columns are missing",
		},
		[]string{"tab", "block"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of active API requests",
		},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		// Truncate long error messages
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		DBQueryErrors.WithLabelValues(operation, table, errorType).Inc()
	}
}

// RecordDatasetLoad records the outcome of loading all datasets.
func RecordDatasetLoad(duration time.Duration, err error) {
	DatasetLoadDuration.Observe(duration.Seconds())
	if err != nil {
		DatasetLoadErrors.Inc()
	}
}

// SetDatasetRows records the row count of one loaded dataset.
func SetDatasetRows(dataset string, rows int64) {
	DatasetRows.WithLabelValues(dataset).Set(float64(rows))
}

// RecordTabRender records how long a tab took to compute.
func RecordTabRender(tab string, duration time.Duration) {
	TabRenderDuration.WithLabelValues(tab).Observe(duration.Seconds())
}

// RecordBlockSkipped counts a chart or KPI card skipped for missing columns.
func RecordBlockSkipped(tab, block string) {
	BlocksSkipped.WithLabelValues(tab, block).Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
