// Package server owns the process lifecycle: configuration, the shared
// database and cache clients, the middleware stack, and the HTTP listener.
package server

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/backoffice/app/routes"
	"github.com/shashiranjanraj/backoffice/config"
	"github.com/shashiranjanraj/backoffice/pkg/cache"
	"github.com/shashiranjanraj/backoffice/pkg/database"
	"github.com/shashiranjanraj/backoffice/pkg/logger"
	"github.com/shashiranjanraj/backoffice/pkg/metrics"
	"github.com/shashiranjanraj/backoffice/pkg/middleware"
	"github.com/shashiranjanraj/backoffice/pkg/reqid"
	"github.com/shashiranjanraj/backoffice/pkg/router"
)

// Start boots the API: config, database (required), cache (optional), and
// the HTTP listener on the configured port.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}

	// The cache is an optimization: when Redis is down every read falls
	// through to the database, so startup proceeds with a warning.
	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, serving without it", "error", err)
	}

	srv := &http.Server{
		Addr:         ":" + config.AppPort(),
		Handler:      Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "port", config.AppPort(), "env", config.AppEnv())
	return srv.ListenAndServe()
}

// Handler builds the full HTTP handler: global middleware stack
// (outermost → innermost), then the route table.
func Handler() http.Handler {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions(config.CORSOrigin())))

	routes.RegisterAPI(r)

	return r.Handler()
}
