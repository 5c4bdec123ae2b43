package routes

import (
	"github.com/gofiber/fiber/v2"

	bannerController "github.com/Goriishankar/Dolchem-backend/controllers/banners"
	saleBannerController "github.com/Goriishankar/Dolchem-backend/controllers/salebanners"
)

func BannerRoutes(app *fiber.App, ctl *bannerController.Controller) {
	banners := app.Group("/api/banners")
	banners.Get("/", ctl.List)
	banners.Post("/", ctl.Create)
	banners.Put("/:id", ctl.Update)
	banners.Delete("/:id", ctl.Delete)
}

func SaleBannerRoutes(app *fiber.App, ctl *saleBannerController.Controller) {
	saleBanners := app.Group("/api/sale-banners")
	saleBanners.Get("/", ctl.List)
	saleBanners.Post("/", ctl.Create)
	saleBanners.Put("/:id", ctl.Update)
	saleBanners.Delete("/:id", ctl.Delete)
}
