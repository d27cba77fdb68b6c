package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/healthsetu/provider-portal/controllers"
)

// SetupAuthRoutes configures the public login and registration screens.
func SetupAuthRoutes(app *fiber.App) {
	app.Get("/", controllers.ShowLogin)
	app.Get("/login", controllers.ShowLogin)
	app.Post("/login", controllers.Login)
	app.Get("/logout", controllers.Logout)

	app.Get("/register", controllers.ShowRegistration)
	app.Post("/register", controllers.Register)
}
