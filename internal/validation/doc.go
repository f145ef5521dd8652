// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

// Package validation validates HTTP request parameters with
// go-playground/validator v10.
//
// A single validator instance is shared by all handlers; it caches struct
// metadata after the first use. Failures are reported with the field's
// query or json tag name so that messages match what the client sent:
//
//	type TabRequest struct {
//	    Tab     string `query:"tab" validate:"required,oneof=rentals monthly"`
//	    Preview int    `query:"preview" validate:"min=0,max=100"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	}
package validation
