// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultMySQLImage is the MySQL image used for extractor integration tests.
	DefaultMySQLImage = "mysql:8.0"

	// DefaultMySQLPort is the MySQL protocol port inside the container.
	DefaultMySQLPort = "3306"

	// DefaultMySQLPassword is the root password of the test server.
	DefaultMySQLPassword = "rentalytics"

	// DefaultMySQLDatabase is created empty at startup.
	DefaultMySQLDatabase = "sakila"
)

// MySQLContainer represents a running MySQL server for testing.
type MySQLContainer struct {
	testcontainers.Container
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// MySQLOption configures the MySQL container.
type MySQLOption func(*mysqlConfig)

type mysqlConfig struct {
	image        string
	database     string
	startTimeout time.Duration
}

// WithMySQLImage sets a custom MySQL Docker image.
func WithMySQLImage(image string) MySQLOption {
	return func(c *mysqlConfig) {
		c.image = image
	}
}

// WithDatabase sets the database created at startup.
func WithDatabase(name string) MySQLOption {
	return func(c *mysqlConfig) {
		c.database = name
	}
}

// WithStartTimeout sets the timeout for waiting for MySQL to accept connections.
func WithStartTimeout(timeout time.Duration) MySQLOption {
	return func(c *mysqlConfig) {
		c.startTimeout = timeout
	}
}

// NewMySQLContainer creates and starts a MySQL server with an empty database.
//
//	mysql, err := testinfra.NewMySQLContainer(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer testinfra.CleanupContainer(t, ctx, mysql.Container)
func NewMySQLContainer(ctx context.Context, opts ...MySQLOption) (*MySQLContainer, error) {
	cfg := &mysqlConfig{
		image:        DefaultMySQLImage,
		database:     DefaultMySQLDatabase,
		startTimeout: 2 * time.Minute,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	req := testcontainers.ContainerRequest{
		Image:        cfg.image,
		ExposedPorts: []string{DefaultMySQLPort + "/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": DefaultMySQLPassword,
			"MYSQL_DATABASE":      cfg.database,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort(DefaultMySQLPort+"/tcp"),
			wait.ForLog("ready for connections").WithOccurrence(2),
		).WithStartupTimeout(cfg.startTimeout),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("create mysql container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, DefaultMySQLPort+"/tcp")
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	port, err := strconv.Atoi(mappedPort.Port())
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("parse mapped port %q: %w", mappedPort.Port(), err)
	}

	return &MySQLContainer{
		Container: container,
		Host:      host,
		Port:      port,
		User:      "root",
		Password:  DefaultMySQLPassword,
		Database:  cfg.database,
	}, nil
}
