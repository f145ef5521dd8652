// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

/*
Package metrics provides Prometheus metrics for the dashboard server.

Metrics are registered with promauto on the default registry and exposed at
/metrics:

	curl http://localhost:8501/metrics

# Available Metrics

Database:
  - duckdb_query_duration_seconds{operation,table}
  - duckdb_query_errors_total{operation,table,error_type}

Datasets:
  - rentalytics_dataset_rows{dataset}
  - rentalytics_dataset_load_duration_seconds
  - rentalytics_dataset_load_errors_total

Dashboard:
  - rentalytics_tab_render_duration_seconds{tab}
  - rentalytics_blocks_skipped_total{tab,block}

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
*/
package metrics
