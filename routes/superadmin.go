package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/healthsetu/provider-portal/controllers"
	"github.com/healthsetu/provider-portal/middleware"
)

// SetupSuperAdminRoutes configures the platform operator console. Login and
// logout stay public; everything else requires the super-admin token.
func SetupSuperAdminRoutes(app *fiber.App) {
	app.Get("/super-admin/login", controllers.ShowSuperAdminLogin)
	app.Post("/super-admin/login", controllers.SuperAdminLogin)
	app.Get("/super-admin/logout", controllers.SuperAdminLogout)

	app.Get("/super-admin", middleware.SuperAdminProtected(), controllers.SuperAdminConsole)
	app.Post("/super-admin/approve/:id", middleware.SuperAdminProtected(), controllers.ApproveRegistration)
	app.Post("/super-admin/reject/:id", middleware.SuperAdminProtected(), controllers.RejectRegistration)
	app.Post("/super-admin/reset-password/:id", middleware.SuperAdminProtected(), controllers.ResetAdminPassword)
}
