package routes

import (
	"github.com/gofiber/fiber/v2"

	metricsController "github.com/Goriishankar/Dolchem-backend/controllers/metrics"
	statsController "github.com/Goriishankar/Dolchem-backend/controllers/stats"
)

func StatsRoutes(app *fiber.App, ctl *statsController.Controller, protectAdmin fiber.Handler) {
	stats := app.Group("/api/stats", protectAdmin)
	stats.Get("/today", ctl.Today)
	stats.Get("/month", ctl.Month)
	stats.Get("/overall", ctl.Overall)
	stats.Get("/states", ctl.States)

	app.Get("/api/admin/stats/customers", ctl.CustomerCount)
}

func MetricsRoutes(app *fiber.App, ctl *metricsController.Controller) {
	app.Get("/api/metrics/public", ctl.Public)
}
