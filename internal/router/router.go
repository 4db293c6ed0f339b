package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/admitboard/admitboard-api/internal/config"
	"github.com/admitboard/admitboard-api/internal/handler"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	TableHandler    *handler.TableHandler
	ReportHandler   *handler.ReportHandler
	AdminHandler    *handler.AdminHandler
	MutationLimiter fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/", handler.UI())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	if deps.TableHandler != nil {
		deps.TableHandler.Register(api.Group("/tables"), deps.MutationLimiter)
	}

	if deps.ReportHandler != nil {
		deps.ReportHandler.Register(api.Group("/reports"))
	}

	if deps.AdminHandler != nil {
		deps.AdminHandler.Register(api.Group("/admin"), deps.MutationLimiter)
	}
}
