// Package server assembles the fiber application.
package server

import (
	"github.com/uiyort/skills-getting-started-with-github-copilot/config"
	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/api"
	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/metrics"
	handlers_fiber "github.com/uiyort/skills-getting-started-with-github-copilot/internal/transport/http/server/handlers-fiber"
	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/transport/http/middleware"
	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// New builds the HTTP application. gatherer may be nil when metrics are disabled.
func New(cfg *config.Config, log *zap.SugaredLogger, uc usecase.InterfaceUsecase, m *metrics.Metrics, gatherer prometheus.Gatherer) *fiber.App {
	serv := fiber.New(fiber.Config{
		AppName:               "school-activities",
		CaseSensitive:         true,
		DisableStartupMessage: true,
		ReadTimeout:           cfg.HTTP.RequestTimeout,
		WriteTimeout:          cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	serv.Use(middleware.RequestLogger(log))
	if m != nil {
		serv.Use(middleware.Metrics(m))
	}

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	if cfg.Metrics.Enabled && gatherer != nil {
		serv.Get(cfg.Metrics.Path, adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
	if cfg.Static.Dir != "" {
		serv.Static("/static", cfg.Static.Dir)
	}

	h := handlers_fiber.NewHandler(log, uc, cfg.Static.Index)
	api.RegisterHandlers(serv, h)
	return serv
}
