// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

/*
Package supervisor runs the dashboard server as a suture v4 supervisor tree.

Tree layout:

	rentalytics (root)
	├── data-layer
	│   └── dataset-loader   one-shot: loads the five CSV files, then exits
	└── api-layer
	    └── http-server      net/http server with graceful shutdown

The HTTP server starts immediately; /api/v1/health/ready answers 503 until
the dataset loader finishes. A failed load is not retried: the loader reports
the error through its failure callback so the caller can stop the tree.

Supervisor events are logged through sutureslog, bridged to zerolog by
logging.NewSlogLogger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewDatasetService(db, func(err error) { cancel(err) }))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err = tree.Serve(ctx)
*/
package supervisor
