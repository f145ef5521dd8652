// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package extract

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tomtom215/rentalytics/internal/logging"
)

// FileResult describes one exported CSV file.
type FileResult struct {
	File     string        `json:"file"`
	Path     string        `json:"path"`
	Columns  []string      `json:"columns"`
	Rows     int           `json:"rows"`
	Duration time.Duration `json:"duration"`
}

// Report summarizes a completed extraction run.
type Report struct {
	Source    string        `json:"source"`
	OutputDir string        `json:"output_dir"`
	Files     []FileResult  `json:"files"`
	Duration  time.Duration `json:"duration"`
}

// TotalRows returns the number of data rows written across all files.
func (r *Report) TotalRows() int {
	total := 0
	for _, f := range r.Files {
		total += f.Rows
	}
	return total
}

// Extractor runs the report queries against a Source and writes the CSVs.
type Extractor struct {
	src       *Source
	outputDir string
	queries   []Query
}

// New creates an Extractor writing into outputDir using the source's dialect.
func New(src *Source, outputDir string) *Extractor {
	return &Extractor{
		src:       src,
		outputDir: outputDir,
		queries:   Queries(src.Dialect()),
	}
}

// Run exports every query in order. One connection is held for the whole run
// and released before returning. The first error aborts the run.
func (e *Extractor) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	ctx = logging.ContextWithNewCorrelationID(ctx)
	logger := logging.Ctx(ctx).With().Str("component", "extractor").Logger()

	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", e.outputDir, err)
	}

	conn, err := e.src.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection to %s: %w", e.src, err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("Failed to release source connection")
		}
	}()

	logger.Info().
		Str("source", e.src.String()).
		Str("output_dir", e.outputDir).
		Int("queries", len(e.queries)).
		Msg("Extraction started")

	report := &Report{
		Source:    e.src.String(),
		OutputDir: e.outputDir,
		Files:     make([]FileResult, 0, len(e.queries)),
	}

	for _, q := range e.queries {
		res, err := e.export(ctx, conn, q)
		if err != nil {
			logger.Error().Err(err).Str("file", q.File).Msg("Extraction aborted")
			return nil, err
		}
		report.Files = append(report.Files, *res)

		logger.Info().
			Str("file", res.File).
			Int("rows", res.Rows).
			Dur("duration", res.Duration).
			Msg("Exported")
	}

	report.Duration = time.Since(start)
	logger.Info().
		Int("files", len(report.Files)).
		Int("rows", report.TotalRows()).
		Dur("duration", report.Duration).
		Msg("Extraction completed")

	return report, nil
}

// export runs one query and streams its rows into the target CSV.
func (e *Extractor) export(ctx context.Context, conn *sql.Conn, q Query) (*FileResult, error) {
	start := time.Now()
	path := filepath.Join(e.outputDir, q.File)

	rows, err := conn.QueryContext(ctx, q.SQL)
	if err != nil {
		return nil, fmt.Errorf("query for %s failed: %w", q.File, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns for %s: %w", q.File, err)
	}

	out, err := createCSV(path)
	if err != nil {
		return nil, err
	}

	n, err := writeRows(out, columns, rows)
	if err != nil {
		out.Abort()
		return nil, fmt.Errorf("failed to export %s: %w", q.File, err)
	}
	if err := out.Commit(); err != nil {
		return nil, err
	}

	return &FileResult{
		File:     q.File,
		Path:     path,
		Columns:  columns,
		Rows:     n,
		Duration: time.Since(start),
	}, nil
}

// writeRows writes the header and every row, returning the data row count.
func writeRows(out *csvFile, columns []string, rows *sql.Rows) (int, error) {
	if err := out.Write(columns); err != nil {
		return 0, err
	}

	values := make([]interface{}, len(columns))
	dest := make([]interface{}, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}
	record := make([]string, len(columns))

	n := 0
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return n, fmt.Errorf("scan row %d: %w", n+1, err)
		}
		for i, v := range values {
			record[i] = FormatValue(v)
		}
		if err := out.Write(record); err != nil {
			return n, err
		}
		n++
	}

	return n, rows.Err()
}
