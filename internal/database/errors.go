// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package database

import (
	"errors"
	"io"
)

var (
	// ErrDatasetMissing is returned by Load when a dataset file does not exist.
	ErrDatasetMissing = errors.New("dataset file not found")

	// ErrNotLoaded is returned by queries issued before a successful Load.
	ErrNotLoaded = errors.New("datasets not loaded")

	// ErrUnknownColumn is returned when a query names a column the dataset lacks.
	ErrUnknownColumn = errors.New("unknown column")
)

// closeQuietly closes a resource and explicitly ignores any error.
// Use this for cleanup in error paths where Close() errors are not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
