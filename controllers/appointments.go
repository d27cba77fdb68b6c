package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/healthsetu/provider-portal/demo"
	"github.com/healthsetu/provider-portal/models"
	"github.com/healthsetu/provider-portal/utils"
)

// appointmentRow decorates an appointment for the tables.
type appointmentRow struct {
	models.Appointment
	StatusValue string
	BadgeClass  string
	StatusLabel string
	DateDisplay string
}

func appointmentRows(appointments []models.Appointment) []appointmentRow {
	rows := make([]appointmentRow, 0, len(appointments))
	for _, a := range appointments {
		row := appointmentRow{
			Appointment: a,
			StatusValue: string(a.Status),
			BadgeClass:  utils.StatusBadgeClass(string(a.Status)),
			StatusLabel: utils.StatusLabel(string(a.Status)),
			DateDisplay: a.AppointmentDate,
		}
		if t, err := time.Parse("2006-01-02", a.AppointmentDate); err == nil {
			row.DateDisplay = t.Format("02/01/2006")
		}
		rows = append(rows, row)
	}
	return rows
}

// Appointments lists appointments with a server-side status filter and the
// summary cards recomputed from the full in-memory list on every render.
func Appointments(c *fiber.Ctx) error {
	filter := c.Query("status", "all")

	// The marketplace API exposes no provider-wide appointment listing,
	// so the portal carries the sample dataset.
	appointments := demo.Appointments()
	filtered := models.FilterAppointments(appointments, filter)

	return render(c, "appointments", fiber.Map{
		"Title":          "Appointment Management",
		"Filter":         filter,
		"Appointments":   appointmentRows(filtered),
		"FilteredCount":  len(filtered),
		"PendingCount":   models.CountByStatus(appointments, models.StatusPending),
		"ConfirmedCount": models.CountByStatus(appointments, models.StatusConfirmed),
		"CompletedCount": models.CountByStatus(appointments, models.StatusCompleted),
		"TotalRevenue":   models.CompletedRevenue(appointments),
	})
}

var allowedTransitions = map[string]bool{
	string(models.StatusConfirmed): true,
	string(models.StatusCancelled): true,
	string(models.StatusCompleted): true,
}

// UpdateAppointmentStatus applies a one-way status action and redirects back
// to the list, so the re-render always observes the completed write.
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	id := sid(c)
	appointmentID := c.Params("id")
	status := c.FormValue("status")
	filter := c.FormValue("filter", "all")

	if !allowedTransitions[status] {
		setFlashError(c, id, "Invalid appointment status")
		return c.Redirect("/appointments?status=" + filter)
	}

	if err := API.UpdateAppointmentStatus(apiCtx(c, providerToken(c)), appointmentID, status); err != nil {
		log.Printf("Error updating appointment status: %v", err)
		setFlashError(c, id, "Failed to update appointment status")
	} else {
		setFlash(c, id, "Appointment status updated successfully!")
	}
	return c.Redirect("/appointments?status=" + filter)
}
