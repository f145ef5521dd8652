// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

/*
Package extract exports the Sakila reporting datasets to CSV.

An Extractor holds a single connection to the source database for the whole
run, executes the fixed report queries in order and writes one CSV file per
query into the output directory. Column headers come from the result set
metadata. Every file is written to a temporary file next to its target and
renamed into place, so a rerun fully replaces the previous export.

The first connection, query or write error aborts the run; files already
exported by that run are left in place.

# Sources

Two drivers are supported:

  - mysql: a MySQL server holding the Sakila schema (go-sql-driver/mysql)
  - duckdb: a DuckDB database file holding the same tables

Only the month bucketing expression differs between them (see Dialect).

# Usage

	src, err := extract.Open(ctx, cfg.Source)
	if err != nil {
	    return err
	}
	defer src.Close()

	report, err := extract.New(src, cfg.Extract.OutputDir).Run(ctx)
*/
package extract
