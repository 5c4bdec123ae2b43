package routes

import (
	"github.com/gofiber/fiber/v2"

	profileController "github.com/Goriishankar/Dolchem-backend/controllers/profile"
)

func ProfileRoutes(app *fiber.App, ctl *profileController.Controller, protect fiber.Handler) {
	profile := app.Group("/api/user/profile")
	profile.Post("/upload", protect, ctl.Upload)
	profile.Delete("/delete", protect, ctl.Delete)
	profile.Get("/:id", ctl.Get)
}
