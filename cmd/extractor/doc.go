// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

/*
Command extractor exports the five Sakila report queries to CSV files.

	rentalytics-extract --output-dir ./output_csv_sakila
	rentalytics-extract --driver duckdb --duckdb-path ./sakila.duckdb -v

Connection settings come from the shared configuration (MYSQL_HOST,
MYSQL_USER, MYSQL_PASSWORD, ...); flags override it. A summary table is
printed when every file has been written. Any failure exits with status 1.
*/
package main
