package routes

import (
	"github.com/gofiber/fiber/v2"

	cartController "github.com/Goriishankar/Dolchem-backend/controllers/cart"
	orderController "github.com/Goriishankar/Dolchem-backend/controllers/orders"
)

func CartRoutes(app *fiber.App, ctl *cartController.Controller, protect fiber.Handler) {
	cart := app.Group("/api/cart", protect)
	cart.Get("/", ctl.Get)
	cart.Post("/add", ctl.Add)
	cart.Put("/update", ctl.Update)
	cart.Delete("/remove/:productId", ctl.Remove)
	cart.Put("/clear", ctl.Clear)
}

func OrderRoutes(app *fiber.App, ctl *orderController.Controller, protect fiber.Handler) {
	app.Post("/api/orders", protect, ctl.Create)
}
