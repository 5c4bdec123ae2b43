package routes

import (
	"github.com/gofiber/fiber/v2"

	productController "github.com/Goriishankar/Dolchem-backend/controllers/products"
)

func ProductRoutes(app *fiber.App, ctl *productController.Controller) {
	products := app.Group("/api/products")
	products.Get("/count", ctl.Count)
	products.Get("/", ctl.List)
	products.Post("/", ctl.Create)
	products.Put("/:id", ctl.Update)
	products.Delete("/:id", ctl.Delete)
}
