// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/rentalytics/internal/logging"
)

// DatasetLoader loads every dataset once. *database.DB implements it.
type DatasetLoader interface {
	Load(ctx context.Context) error
}

// DatasetService loads the datasets and exits. It never restarts: a load
// that failed once (for example a missing CSV file) fails the same way again,
// so the error goes to onFailure instead.
type DatasetService struct {
	loader    DatasetLoader
	onFailure func(error)
}

// NewDatasetService creates the loader service. onFailure may be nil.
func NewDatasetService(loader DatasetLoader, onFailure func(error)) *DatasetService {
	return &DatasetService{loader: loader, onFailure: onFailure}
}

// Serve implements suture.Service.
func (s *DatasetService) Serve(ctx context.Context) error {
	start := time.Now()
	if err := s.loader.Load(ctx); err != nil {
		err = fmt.Errorf("dataset load failed: %w", err)
		logging.Error().Err(err).Msg("Datasets could not be loaded")
		if s.onFailure != nil {
			s.onFailure(err)
		}
		return errors.Join(suture.ErrDoNotRestart, err)
	}

	logging.Info().Dur("duration", time.Since(start)).Msg("Datasets ready")
	return suture.ErrDoNotRestart
}

// String names the service in supervisor events.
func (s *DatasetService) String() string {
	return "dataset-loader"
}
