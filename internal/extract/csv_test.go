// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package extract

import (
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/duckdb/duckdb-go/v2"
)

func mustParseFloat(t *testing.T, s string) float64 {
	t.Helper()
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		t.Fatalf("ParseFloat(%q) error = %v", s, err)
	}
	return f
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"nil", nil, ""},
		{"string", "MARY SMITH", "MARY SMITH"},
		{"bytes", []byte("67.82"), "67.82"},
		{"time", time.Date(2005, 5, 24, 22, 53, 30, 0, time.UTC), "2005-05-24 22:53:30"},
		{"float", 12.5, "12.5"},
		{"whole float", 20.0, "20"},
		{"float32", float32(0.99), "0.99"},
		{"int64", int64(16044), "16044"},
		{"int32", int32(2), "2"},
		{"int16", int16(7), "7"},
		{"bool true", true, "True"},
		{"bool false", false, "False"},
		{"hugeint", big.NewInt(123456789), "123456789"},
		{"decimal", duckdb.Decimal{Width: 10, Scale: 2, Value: big.NewInt(6782)}, "67.82"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.in); got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatDecimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		unscaled int64
		scale    int
		want     string
	}{
		{6782, 2, "67.82"},
		{99, 2, "0.99"},
		{5, 2, "0.05"},
		{0, 2, "0.00"},
		{-150, 2, "-1.50"},
		{-5, 3, "-0.005"},
		{42, 0, "42"},
	}

	for _, tt := range tests {
		if got := formatDecimal(big.NewInt(tt.unscaled), tt.scale); got != tt.want {
			t.Errorf("formatDecimal(%d, %d) = %q, want %q", tt.unscaled, tt.scale, got, tt.want)
		}
	}

	if got := formatDecimal(nil, 2); got != "" {
		t.Errorf("formatDecimal(nil) = %q, want empty", got)
	}
}

func TestCSVFile_CommitAndAbort(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clientes_mas_frecuentes.csv")

	f, err := createCSV(path)
	if err != nil {
		t.Fatalf("createCSV() error = %v", err)
	}
	if err := f.Write([]string{"cliente", "total_gastado"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := f.Write([]string{"SMITH, MARY", "20"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("target visible before Commit, stat err = %v", err)
	}
	if err := f.Commit(); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if want := "cliente,total_gastado\n\"SMITH, MARY\",20\n"; string(data) != want {
		t.Errorf("contents = %q, want %q", data, want)
	}

	aborted, err := createCSV(filepath.Join(dir, "aborted.csv"))
	if err != nil {
		t.Fatalf("createCSV() error = %v", err)
	}
	aborted.Abort()

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("dir entries = %d, want only the committed file", len(entries))
	}
}
