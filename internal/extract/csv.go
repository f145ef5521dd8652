// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package extract

import (
	"encoding/csv"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/duckdb/duckdb-go/v2"
)

// TimestampLayout is how datetime values are written to CSV.
const TimestampLayout = "2006-01-02 15:04:05"

// csvFile writes a CSV to a temporary file and renames it over the target on
// Commit, so readers never observe a half-written export.
type csvFile struct {
	path string
	tmp  *os.File
	w    *csv.Writer
}

func createCSV(path string) (*csvFile, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	return &csvFile{path: path, tmp: tmp, w: csv.NewWriter(tmp)}, nil
}

func (f *csvFile) Write(record []string) error {
	return f.w.Write(record)
}

// Commit flushes, closes and renames the temporary file into place.
func (f *csvFile) Commit() error {
	f.w.Flush()
	if err := f.w.Error(); err != nil {
		f.Abort()
		return fmt.Errorf("failed to flush %s: %w", f.path, err)
	}
	if err := f.tmp.Close(); err != nil {
		os.Remove(f.tmp.Name()) //nolint:errcheck
		return fmt.Errorf("failed to close %s: %w", f.path, err)
	}
	if err := os.Chmod(f.tmp.Name(), 0o644); err != nil {
		os.Remove(f.tmp.Name()) //nolint:errcheck
		return fmt.Errorf("failed to set permissions on %s: %w", f.path, err)
	}
	if err := os.Rename(f.tmp.Name(), f.path); err != nil {
		os.Remove(f.tmp.Name()) //nolint:errcheck
		return fmt.Errorf("failed to replace %s: %w", f.path, err)
	}
	return nil
}

// Abort discards the temporary file. Safe to call after a failed Commit.
func (f *csvFile) Abort() {
	f.tmp.Close()           //nolint:errcheck
	os.Remove(f.tmp.Name()) //nolint:errcheck
}

// FormatValue renders a scanned database value as a CSV cell.
// NULL becomes an empty cell.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(TimestampLayout)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(val, 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case bool:
		if val {
			return "True"
		}
		return "False"
	case duckdb.Decimal:
		return formatDecimal(val.Value, int(val.Scale))
	case *big.Int:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// formatDecimal renders an unscaled integer with the given number of decimals.
func formatDecimal(unscaled *big.Int, scale int) string {
	if unscaled == nil {
		return ""
	}
	if scale <= 0 {
		return unscaled.String()
	}

	digits := new(big.Int).Abs(unscaled).String()
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}

	out := digits[:len(digits)-scale] + "." + digits[len(digits)-scale:]
	if unscaled.Sign() < 0 {
		out = "-" + out
	}
	return out
}
