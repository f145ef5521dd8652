// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tomtom215/rentalytics/internal/config"
	"github.com/tomtom215/rentalytics/internal/extract"
	"github.com/tomtom215/rentalytics/internal/logging"
)

// flags holds the command line overrides. Empty values keep the configuration.
type flags struct {
	outputDir  string
	driver     string
	duckdbPath string
	verbose    bool
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "rentalytics-extract",
		Short:         "Export the Sakila rental reports to CSV files.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(f)
			if err != nil {
				return err
			}

			logging.Init(loggingConfig(cfg))

			report, err := runExtract(cmd, cfg)
			if err != nil {
				logging.Error().Err(err).Msg("Extraction failed")
				return err
			}
			renderSummary(stdout, report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", "", "directory the CSV files are written to")
	cmd.Flags().StringVar(&f.driver, "driver", "", "source database: mysql or duckdb")
	cmd.Flags().StringVar(&f.duckdbPath, "duckdb-path", "", "DuckDB file holding the Sakila tables (driver duckdb)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "set debug logging level")

	return cmd
}

// loadConfig reads the layered configuration and validates it only after the
// flags are applied, so a flag can supply a setting the environment lacks.
func loadConfig(f flags) (*config.Config, error) {
	cfg, err := config.LoadUnvalidated()
	if err != nil {
		return nil, err
	}
	if err := f.apply(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loggingConfig maps the logging section onto the logger defaults.
func loggingConfig(cfg *config.Config) logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = cfg.Logging.Level
	lc.Format = cfg.Logging.Format
	lc.Caller = cfg.Logging.Caller
	return lc
}

// apply overrides cfg with the flags that were set and validates it.
func (f flags) apply(cfg *config.Config) error {
	if f.outputDir != "" {
		cfg.Extract.OutputDir = f.outputDir
	}
	if f.driver != "" {
		cfg.Source.Driver = f.driver
	}
	if f.duckdbPath != "" {
		cfg.Source.Path = f.duckdbPath
	}
	if f.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

func runExtract(cmd *cobra.Command, cfg *config.Config) (*extract.Report, error) {
	ctx := cmd.Context()

	src, err := extract.Open(ctx, cfg.Source)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("Failed to close source database")
		}
	}()

	return extract.New(src, cfg.Extract.OutputDir).Run(ctx)
}

// renderSummary prints one row per exported file plus a total row.
func renderSummary(w io.Writer, report *extract.Report) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"File", "Rows", "Columns", "Duration"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, f := range report.Files {
		table.Append([]string{
			f.File,
			strconv.Itoa(f.Rows),
			strconv.Itoa(len(f.Columns)),
			f.Duration.Round(time.Millisecond).String(),
		})
	}
	table.SetFooter([]string{
		"Total",
		strconv.Itoa(report.TotalRows()),
		"",
		report.Duration.Round(time.Millisecond).String(),
	})
	table.Render()

	fmt.Fprintf(w, "CSV files written to %s\n", report.OutputDir)
}
