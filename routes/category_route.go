package routes

import (
	"github.com/gofiber/fiber/v2"

	categoryController "github.com/Goriishankar/Dolchem-backend/controllers/categories"
)

func CategoryRoutes(app *fiber.App, ctl *categoryController.Controller) {
	categories := app.Group("/api/categories")
	categories.Get("/", ctl.List)
	categories.Post("/", ctl.Create)
	categories.Put("/:id", ctl.Update)
	categories.Delete("/:id", ctl.Delete)
}
