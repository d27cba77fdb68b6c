package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/healthsetu/provider-portal/controllers"
	"github.com/healthsetu/provider-portal/middleware"
)

// SetupProviderRoutes configures the authenticated provider screens.
func SetupProviderRoutes(app *fiber.App) {
	app.Get("/dashboard", middleware.Protected(), controllers.Dashboard)

	app.Get("/doctors", middleware.Protected(), controllers.Doctors)
	app.Post("/doctors", middleware.Protected(), controllers.AddDoctor)

	app.Get("/appointments", middleware.Protected(), controllers.Appointments)
	app.Post("/appointments/:id/status", middleware.Protected(), controllers.UpdateAppointmentStatus)

	app.Get("/availability", middleware.Protected(), controllers.Availability)
	app.Post("/availability", middleware.Protected(), controllers.SaveAvailability)
}
