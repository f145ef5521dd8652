// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

// Package services adapts the dashboard's long-running pieces to
// suture.Service: the HTTP server and the one-shot dataset loader.
package services
