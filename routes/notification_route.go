package routes

import (
	"github.com/gofiber/fiber/v2"

	deviceController "github.com/Goriishankar/Dolchem-backend/controllers/devices"
	notificationController "github.com/Goriishankar/Dolchem-backend/controllers/notifications"
)

func NotificationRoutes(app *fiber.App, ctl *notificationController.Controller) {
	notifications := app.Group("/api/notifications")
	notifications.Get("/", ctl.List)
	// clear before :id so the literal path wins
	notifications.Delete("/clear", ctl.Clear)
	notifications.Delete("/:id", ctl.Delete)
}

func DeviceRoutes(app *fiber.App, ctl *deviceController.Controller) {
	app.Post("/api/devices/token", ctl.SaveToken)
}
