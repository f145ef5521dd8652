// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/rentalytics/internal/models"
	"github.com/tomtom215/rentalytics/internal/validation"
)

// TabRequest is the validated input of GET /api/v1/tabs/{tab}.
// Tab ids that pass validation but do not exist are a 404, not a 400.
type TabRequest struct {
	Tab     string `query:"tab" validate:"required,alpha,max=32"`
	Preview int    `query:"preview" validate:"min=0,max=100"`
}

// parseTabRequest reads and validates the tab id and preview size.
// A missing preview uses defaultPreview.
func parseTabRequest(r *http.Request, defaultPreview int) (*TabRequest, *models.APIError) {
	req := &TabRequest{
		Tab:     chi.URLParam(r, "tab"),
		Preview: defaultPreview,
	}

	if raw := r.URL.Query().Get("preview"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &models.APIError{
				Code:    ErrCodeValidation,
				Message: "preview must be an integer",
				Details: map[string]interface{}{"field": "preview", "value": raw},
			}
		}
		req.Preview = n
	}

	if verr := validation.ValidateStruct(req); verr != nil {
		apiErr := verr.ToAPIError()
		return nil, &models.APIError{Code: apiErr.Code, Message: apiErr.Message, Details: apiErr.Details}
	}
	return req, nil
}
