package routes

import (
	"github.com/gofiber/fiber/v2"

	wishlistController "github.com/Goriishankar/Dolchem-backend/controllers/wishlist"
)

func WishlistRoutes(app *fiber.App, ctl *wishlistController.Controller, protect fiber.Handler) {
	wishlist := app.Group("/api/wishlist", protect)
	wishlist.Get("/", ctl.Get)
	wishlist.Post("/add", ctl.Add)
	wishlist.Delete("/remove", ctl.Remove)
}
