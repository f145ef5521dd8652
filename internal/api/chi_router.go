// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/rentalytics/internal/config"
	"github.com/tomtom215/rentalytics/internal/logging"
	"github.com/tomtom215/rentalytics/internal/middleware"
)

// slowRequestThreshold raises request log lines to warn level.
const slowRequestThreshold = 2 * time.Second

// compressionLevel is the gzip level used by chi's Compress middleware.
const compressionLevel = 5

// Router wires handlers and middleware onto a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. The security section of cfg configures CORS
// and rate limiting; a nil cfg uses the defaults.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	var mwConfig *ChiMiddlewareConfig
	if cfg != nil {
		mwConfig = ChiMiddlewareConfigFromSecurity(cfg.Security)
		if cfg.ShouldWarnAboutCORS() {
			logging.Warn().Strs("origins", cfg.Security.CORSOrigins).Msg("Wildcard CORS origin configured in production")
		}
	}
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// SetupChi configures all routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(slowRequestThreshold))
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(chimiddleware.Compress(compressionLevel))
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Get("/api/v1/tabs", router.handler.Tabs)
		r.Get("/api/v1/tabs/{tab}", router.handler.Tab)
		r.Get("/api/v1/datasets", router.handler.Datasets)
		r.Get("/", router.handler.Index)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
