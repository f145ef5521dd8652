// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package validation

import (
	"strings"
	"testing"
)

type tabRequest struct {
	Tab     string `query:"tab" validate:"required,oneof=rentals monthly customers"`
	Preview int    `query:"preview" validate:"min=0,max=100"`
	Name    string `json:"name" validate:"omitempty,max=5"`
	Plain   int    `validate:"gte=1"`
}

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	req := tabRequest{Tab: "monthly", Preview: 100, Name: "abc", Plain: 1}
	if err := ValidateStruct(&req); err != nil {
		t.Errorf("ValidateStruct() = %v", err)
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		req     tabRequest
		field   string
		tag     string
		message string
	}{
		{"missing tab", tabRequest{Plain: 1}, "tab", "required", "tab is required"},
		{"unknown tab", tabRequest{Tab: "films", Plain: 1}, "tab", "oneof", "tab must be one of: rentals, monthly, customers"},
		{"negative preview", tabRequest{Tab: "rentals", Preview: -1, Plain: 1}, "preview", "min", "preview must be at least 0"},
		{"large preview", tabRequest{Tab: "rentals", Preview: 101, Plain: 1}, "preview", "max", "preview must be at most 100"},
		{"json name", tabRequest{Tab: "rentals", Name: "toolong", Plain: 1}, "name", "max", "name must be at most 5 characters"},
		{"go field name", tabRequest{Tab: "rentals"}, "Plain", "gte", "Plain must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.req)
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if len(err.Fields) != 1 {
				t.Fatalf("Fields = %+v, want one failure", err.Fields)
			}
			f := err.Fields[0]
			if f.Field != tt.field || f.Tag != tt.tag || f.Message != tt.message {
				t.Errorf("failure = %+v, want field %q tag %q message %q", f, tt.field, tt.tag, tt.message)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	single := ValidateStruct(&tabRequest{Tab: "rentals", Preview: 500, Plain: 1}).ToAPIError()
	if single.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q", single.Code)
	}
	if single.Details["field"] != "preview" {
		t.Errorf("Details = %v", single.Details)
	}

	multi := ValidateStruct(&tabRequest{Preview: 500}).ToAPIError()
	fields, ok := multi.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 3 {
		t.Fatalf("Details = %v, want 3 fields", multi.Details)
	}
	if !strings.Contains(multi.Message, "tab is required") || !strings.Contains(multi.Message, "; ") {
		t.Errorf("Message = %q", multi.Message)
	}

	empty := (&RequestValidationError{}).ToAPIError()
	if empty.Message != "Validation failed" {
		t.Errorf("empty Message = %q", empty.Message)
	}
}
