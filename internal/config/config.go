// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Extraction:
//     - Source: Sakila database connection (MySQL or a DuckDB copy)
//     - Extract: Output directory for the exported CSV files
//
//  2. Dashboard:
//     - Dataset: Directory of the cleaned CSV files and DuckDB tuning
//     - Server: HTTP server configuration (host, port, timeout)
//     - Security: CORS and rate limiting
//
//  3. Observability:
//     - Logging: Log levels and output formats
type Config struct {
	Source   SourceConfig   `koanf:"source"`
	Extract  ExtractConfig  `koanf:"extract"`
	Dataset  DatasetConfig  `koanf:"dataset"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// SourceConfig describes the database the extractor reads from.
//
// Driver "mysql" connects to a MySQL server holding the Sakila schema.
// Driver "duckdb" opens a DuckDB database file holding a copy of the same
// tables, which is handy for offline runs and tests.
type SourceConfig struct {
	Driver   string        `koanf:"driver"`
	Host     string        `koanf:"host"`
	Port     int           `koanf:"port"`
	User     string        `koanf:"user"`
	Password string        `koanf:"password"`
	Database string        `koanf:"database"`
	Path     string        `koanf:"path"` // DuckDB file, only used when Driver is "duckdb"
	Timeout  time.Duration `koanf:"timeout"`
}

// Addr returns the host:port pair of the MySQL server.
func (s SourceConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ExtractConfig holds extractor output settings.
type ExtractConfig struct {
	OutputDir string `koanf:"output_dir"`
}

// DatasetConfig holds the dashboard's dataset location and DuckDB settings.
type DatasetConfig struct {
	Dir         string `koanf:"dir"`
	MaxMemory   string `koanf:"max_memory"`
	Threads     int    `koanf:"threads"` // 0 lets DuckDB pick
	PreviewRows int    `koanf:"preview_rows"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging, production
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json, console
	Caller bool   `koanf:"caller"`
}

// Load reads configuration using the layered Koanf loader.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// LoadUnvalidated is Load without Validate, for callers that override
// settings (command line flags) before validating themselves.
func LoadUnvalidated() (*Config, error) {
	return loadLayers()
}
