package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/healthsetu/provider-portal/demo"
)

// Dashboard fetches the provider overview and renders the stat cards plus
// today's appointment table. A failed fetch falls back to the sample data.
func Dashboard(c *fiber.Ctx) error {
	providerID, _ := c.Locals("providerID").(string)

	data := fiber.Map{"Title": "Healthcare Provider Dashboard"}

	dashboard, err := API.Dashboard(apiCtx(c, providerToken(c)), providerID)
	if err != nil {
		log.Printf("Error fetching dashboard data: %v", err)
		data["ErrorMessage"] = "Failed to load dashboard data"
		dashboard = demo.Dashboard()
	}

	data["Dashboard"] = dashboard
	data["TodayAppointments"] = appointmentRows(dashboard.TodayAppointments)
	return render(c, "dashboard", data)
}
