// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package query

import (
	"strings"
)

// WhereBuilder constructs SQL WHERE clauses joined with AND.
type WhereBuilder struct {
	clauses []string
}

// NewWhereBuilder creates an empty WhereBuilder.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{clauses: []string{}}
}

// AddNotNull adds "<expr> IS NOT NULL" for every expression. Empty
// expressions are skipped.
func (wb *WhereBuilder) AddNotNull(exprs ...string) *WhereBuilder {
	for _, expr := range exprs {
		if expr == "" {
			continue
		}
		wb.clauses = append(wb.clauses, expr+" IS NOT NULL")
	}
	return wb
}

// Build returns the conditions without the WHERE keyword, or "1=1" when
// there are none.
func (wb *WhereBuilder) Build() string {
	if len(wb.clauses) == 0 {
		return "1=1"
	}
	return strings.Join(wb.clauses, " AND ")
}

// BuildWithPrefix is Build with the "WHERE " prefix.
func (wb *WhereBuilder) BuildWithPrefix() string {
	return "WHERE " + wb.Build()
}
