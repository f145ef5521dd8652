// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

/*
Command server runs the rental analytics dashboard.

It loads the five cleaned CSV files (*_limpio.csv) from DATA_DIR into an
in-memory DuckDB database and serves the dashboard page and JSON API on
HTTP_PORT (default 8501).

Startup order:

 1. Configuration (Koanf v2: defaults, config.yaml, environment)
 2. Logging (zerolog)
 3. DuckDB in-memory engine
 4. Supervisor tree: dataset loader (data layer) and HTTP server (api layer)

A missing CSV file stops the server with exit status 1. SIGINT and SIGTERM
shut the HTTP server down gracefully.

Example:

	DATA_DIR=./output_csv_sakila LOG_FORMAT=console ./server
*/
package main
