// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

// Package testinfra provides container helpers for integration tests.
//
// The MySQLContainer starts a real MySQL 8 server so the extractor can be
// exercised against the driver and dialect it uses in production:
//
//	func TestExtract_MySQL(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    mysql, err := testinfra.NewMySQLContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, mysql.Container)
//	}
//
// All files carry the integration build tag:
//
//	go test -tags integration ./...
package testinfra
