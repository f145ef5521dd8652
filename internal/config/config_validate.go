// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateSource(); err != nil {
		return err
	}

	if err := c.validateExtract(); err != nil {
		return err
	}

	if err := c.validateDataset(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validSourceDrivers defines the supported extraction sources
var validSourceDrivers = map[string]bool{
	"mysql":  true,
	"duckdb": true,
}

// validateSource validates the extraction source configuration
func (c *Config) validateSource() error {
	if !validSourceDrivers[c.Source.Driver] {
		return fmt.Errorf("SOURCE_DRIVER must be one of: mysql, duckdb")
	}

	if c.Source.Driver == "duckdb" {
		if c.Source.Path == "" {
			return fmt.Errorf("DUCKDB_SOURCE is required when SOURCE_DRIVER=duckdb")
		}
		return nil
	}

	if c.Source.Host == "" {
		return fmt.Errorf("MYSQL_HOST is required when SOURCE_DRIVER=mysql")
	}
	if c.Source.Port < 1 || c.Source.Port > 65535 {
		return fmt.Errorf("MYSQL_PORT must be between 1 and 65535")
	}
	if c.Source.Database == "" {
		return fmt.Errorf("MYSQL_DATABASE is required when SOURCE_DRIVER=mysql")
	}
	if c.Source.Timeout < 0 {
		return fmt.Errorf("MYSQL_TIMEOUT must not be negative")
	}
	return nil
}

func (c *Config) validateExtract() error {
	if strings.TrimSpace(c.Extract.OutputDir) == "" {
		return fmt.Errorf("EXTRACT_OUTPUT_DIR must not be empty")
	}
	return nil
}

// Preview bounds
const (
	minPreviewRows = 0
	maxPreviewRows = 100
)

// validateDataset validates the dashboard dataset configuration
func (c *Config) validateDataset() error {
	if strings.TrimSpace(c.Dataset.Dir) == "" {
		return fmt.Errorf("DATA_DIR must not be empty")
	}
	if c.Dataset.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must not be negative")
	}
	if c.Dataset.PreviewRows < minPreviewRows || c.Dataset.PreviewRows > maxPreviewRows {
		return fmt.Errorf("PREVIEW_ROWS must be between %d and %d", minPreviewRows, maxPreviewRows)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateSecurity validates CORS and rate limiting configuration
func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// HasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS reports whether a wildcard origin is configured in production.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && c.HasWildcardCORS()
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// IsDevelopment returns true if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "" || env == "development" || env == "dev"
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
