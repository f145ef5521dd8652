// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package database

import (
	"context"
	"math"
	"math/big"
	"reflect"
	"testing"
	"time"
)

func TestPreview(t *testing.T) {
	db := setupLoadedDB(t)
	ctx := context.Background()

	table, err := db.Preview(ctx, TopCustomers, 2)
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	if !reflect.DeepEqual(table.Columns, db.Columns(TopCustomers)) {
		t.Errorf("Columns = %v", table.Columns)
	}
	want := [][]interface{}{
		{int64(1), "MARY SMITH", int64(30), 150.5},
		{int64(2), "PATRICIA JOHNSON", int64(25), float64(120)},
	}
	if !reflect.DeepEqual(table.Rows, want) {
		t.Errorf("Rows = %#v, want %#v", table.Rows, want)
	}

	table, err = db.Preview(ctx, TopCustomers, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Rows) != 5 {
		t.Fatalf("len(Rows) = %d, want 5", len(table.Rows))
	}
	if table.Rows[4][3] != nil {
		t.Errorf("empty cell = %#v, want nil", table.Rows[4][3])
	}

	table, err = db.Preview(ctx, Rentals, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := table.Rows[0][4]; got != "2005-05-24 22:53:30" {
		t.Errorf("rental_date = %#v", got)
	}
}

func TestPreview_Zero(t *testing.T) {
	db := setupLoadedDB(t)

	table, err := db.Preview(context.Background(), TopFilms, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Columns) != 3 || len(table.Rows) != 0 {
		t.Errorf("Preview(0) = %d columns, %d rows", len(table.Columns), len(table.Rows))
	}
}

func TestCellValue(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want interface{}
	}{
		{"nil", nil, nil},
		{"bytes", []byte("abc"), "abc"},
		{"date", time.Date(2005, 5, 24, 0, 0, 0, 0, time.UTC), "2005-05-24"},
		{"timestamp", time.Date(2005, 5, 24, 22, 53, 30, 0, time.UTC), "2005-05-24 22:53:30"},
		{"nan", math.NaN(), nil},
		{"inf", math.Inf(1), nil},
		{"float", 2.5, 2.5},
		{"big int", big.NewInt(42), int64(42)},
		{"string", "x", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cellValue(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("cellValue(%v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}
