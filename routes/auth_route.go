package routes

import (
	"github.com/gofiber/fiber/v2"

	authController "github.com/Goriishankar/Dolchem-backend/controllers/auth"
)

func AuthRoutes(app *fiber.App, ctl *authController.Controller, protectAdmin fiber.Handler) {
	auth := app.Group("/api/auth")
	auth.Post("/signup", ctl.Signup)
	auth.Post("/login", ctl.Login)
	auth.Put("/updateProfile", ctl.UpdateProfile)
	auth.Put("/updatePhone", ctl.UpdatePhone)
	auth.Post("/admin/login", ctl.AdminLogin)
	auth.Post("/admin/create", ctl.AdminCreate)

	app.Get("/api/user/profile/admin", protectAdmin, ctl.AdminProfile)
}
