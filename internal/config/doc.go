// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

/*
Package config provides centralized configuration management for Rentalytics.

Both binaries (the extractor and the dashboard server) load the same Config
through Koanf v2: defaults, then an optional YAML file, then environment
variables.

# Environment Variables

Extraction source:
  - SOURCE_DRIVER: mysql or duckdb (default: mysql)
  - MYSQL_HOST, MYSQL_PORT, MYSQL_USER, MYSQL_PASSWORD, MYSQL_DATABASE
  - MYSQL_TIMEOUT: dial timeout (default: 10s)
  - DUCKDB_SOURCE: DuckDB file holding Sakila tables (driver duckdb only)
  - EXTRACT_OUTPUT_DIR: CSV output directory (default: output_csv_sakila)

Dashboard:
  - DATA_DIR: directory holding the *_limpio.csv files (default: .)
  - DUCKDB_MAX_MEMORY, DUCKDB_THREADS: in-memory engine tuning
  - PREVIEW_ROWS: default raw-row preview size (default: 5)
  - HTTP_HOST, HTTP_PORT (default: 8501), HTTP_TIMEOUT, ENVIRONMENT
  - CORS_ORIGINS: comma-separated list (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Config File

CONFIG_PATH points at a YAML file; otherwise config.yaml in the working
directory or /etc/rentalytics/config.yaml is used when present:

	source:
	  driver: mysql
	  host: db.internal
	  password: secret
	dataset:
	  dir: /data/sakila
	server:
	  port: 8501
*/
package config
