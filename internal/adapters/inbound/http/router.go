package http

import (
	"net/http"

	"github.com/architeacher/device-inventory/internal/adapters/inbound/http/handlers"
	"github.com/architeacher/device-inventory/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/device-inventory/internal/config"
	"github.com/architeacher/device-inventory/internal/usecases"
	"github.com/architeacher/device-inventory/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

const (
	devicesPath     = "/devices"
	devicePath      = "/devices/{name}"
	healthcheckPath = "/healthz"
)

// NewRouter assembles the HTTP surface: request identity, panic recovery,
// per-request deadline and security headers apply to every route.
func NewRouter(cfg *config.ServiceConfig, app *usecases.Application, log logger.Logger) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID())
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Recovery(log))
	router.Use(chimiddleware.Timeout(cfg.HTTPServer.WriteTimeout))
	router.Use(middleware.SecurityHeaders())

	if cfg.Logging.AccessLog.Enabled {
		healthFilter := middleware.NewHealthCheckFilter(cfg.Logging.AccessLog.LogHealthChecks)
		router.Use(healthFilter.Middleware)
		router.Use(middleware.AccessLogger(log, cfg.Logging.AccessLog.IncludeQueryParams))
	}

	deviceHandler := handlers.NewDeviceHandler(app, log)
	healthHandler := handlers.NewHealthHandler(app, log)

	router.Get(healthcheckPath, healthHandler.Check)

	router.Get(devicesPath, deviceHandler.List)
	router.Post(devicesPath, deviceHandler.Create)

	router.Get(devicePath, deviceHandler.Get)
	router.Put(devicePath, deviceHandler.Update)
	router.Delete(devicePath, deviceHandler.Delete)

	return router
}
