// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package database

import (
	"context"
	"math"
	"reflect"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSegment_Films(t *testing.T) {
	db := setupLoadedDB(t)

	res, err := db.Segment(context.Background(), SegmentRule{
		Dataset:           TopFilms,
		LabelColumn:       "pelicula",
		FrequencyColumn:   "total_alquileres",
		FrequencyQuantile: 0.35,
		ValueColumn:       "total_ingresos",
		ValueQuantile:     0.75,
	})
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}

	// rentals [1 2 3 8 10] -> q35 = 2.4; revenue [20 40 45 50 60] -> q75 = 50
	if !almostEqual(res.FrequencyThreshold, 2.4) {
		t.Errorf("FrequencyThreshold = %v, want 2.4", res.FrequencyThreshold)
	}
	if !almostEqual(res.ValueThreshold, 50) {
		t.Errorf("ValueThreshold = %v, want 50", res.ValueThreshold)
	}

	var order []string
	for _, r := range res.Rows {
		order = append(order, r.Label)
	}
	if want := []string{"E", "A", "B", "C", "D"}; !reflect.DeepEqual(order, want) {
		t.Errorf("row order = %v, want %v", order, want)
	}

	if res.Count() != 1 || res.Total() != 5 || !almostEqual(res.Percent(), 20) {
		t.Errorf("Count/Total/Percent = %d/%d/%v, want 1/5/20", res.Count(), res.Total(), res.Percent())
	}
	flagged := res.Flagged()
	if len(flagged) != 1 || flagged[0].Label != "E" || flagged[0].Frequency != 1 || flagged[0].Value != 60 {
		t.Errorf("Flagged() = %+v", flagged)
	}
}

func TestSegment_CustomersWithNull(t *testing.T) {
	db := setupLoadedDB(t)

	res, err := db.Segment(context.Background(), SegmentRule{
		Dataset:           TopCustomers,
		LabelColumn:       "cliente",
		FrequencyColumn:   "total_transacciones",
		FrequencyQuantile: 0.5,
		ValueColumn:       "total_gastado",
		ValueQuantile:     0.75,
	})
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}

	if !almostEqual(res.FrequencyThreshold, 20) || !almostEqual(res.ValueThreshold, 150.5) {
		t.Errorf("thresholds = %v, %v; want 20, 150.5", res.FrequencyThreshold, res.ValueThreshold)
	}
	if res.Count() != 1 || res.Flagged()[0].Label != "LINDA WILLIAMS" {
		t.Errorf("Flagged() = %+v, want LINDA WILLIAMS only", res.Flagged())
	}
	if res.Total() != 5 {
		t.Errorf("Total() = %d, want 5", res.Total())
	}

	for _, r := range res.Rows {
		if r.Label == "BARBARA JONES" {
			if r.Complete || r.Flagged {
				t.Errorf("row with NULL spend = %+v, want incomplete and not flagged", r)
			}
		}
	}
}

func TestSegment_Idempotent(t *testing.T) {
	db := setupLoadedDB(t)
	ctx := context.Background()

	rule := SegmentRule{
		Dataset:           TopCustomers,
		LabelColumn:       "cliente",
		FrequencyColumn:   "total_transacciones",
		FrequencyQuantile: 0.5,
		ValueColumn:       "total_gastado",
		ValueQuantile:     0.75,
	}
	first, err := db.Segment(ctx, rule)
	if err != nil {
		t.Fatal(err)
	}
	second, err := db.Segment(ctx, rule)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Segment() not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestSegment_InvalidQuantile(t *testing.T) {
	db := setupLoadedDB(t)

	_, err := db.Segment(context.Background(), SegmentRule{
		Dataset:           TopFilms,
		LabelColumn:       "pelicula",
		FrequencyColumn:   "total_alquileres",
		FrequencyQuantile: 1.5,
		ValueColumn:       "total_ingresos",
		ValueQuantile:     0.75,
	})
	if err == nil {
		t.Error("Segment() with quantile 1.5 succeeded")
	}
}

func TestSegmentResult_Empty(t *testing.T) {
	var res SegmentResult
	if res.Percent() != 0 || res.Count() != 0 || res.Total() != 0 {
		t.Errorf("empty result = %v/%d/%d", res.Percent(), res.Count(), res.Total())
	}
}
