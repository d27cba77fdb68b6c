package controllers

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/healthsetu/provider-portal/demo"
	"github.com/healthsetu/provider-portal/models"
)

// availabilityDay is one row of the weekly edit grid and summary table.
type availabilityDay struct {
	Day          int
	Name         string
	StartTime    string
	EndTime      string
	SlotDuration int
	Available    bool
	SlotCount    int
}

func scheduleRows(slots []models.AvailabilitySlot) []availabilityDay {
	byDay := make(map[int]models.AvailabilitySlot, len(slots))
	for _, s := range slots {
		byDay[s.DayOfWeek] = s
	}
	rows := make([]availabilityDay, 0, 7)
	for day := 0; day < 7; day++ {
		row := availabilityDay{Day: day, Name: models.DayNames[day], SlotDuration: 30}
		if s, ok := byDay[day]; ok {
			row.StartTime = s.StartTime
			row.EndTime = s.EndTime
			if s.SlotDuration > 0 {
				row.SlotDuration = s.SlotDuration
			}
			if count, ok := s.SlotCount(); ok {
				row.Available = true
				row.SlotCount = count
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Availability renders the doctor picker and, once a doctor is selected,
// the weekly schedule editor plus the slot-count summary.
func Availability(c *fiber.Ctx) error {
	doctorID := c.QueryInt("doctor_id")

	data := fiber.Map{
		"Title":    "Availability Management",
		"Doctors":  demo.Doctors(),
		"DoctorID": doctorID,
	}

	if doctorID != 0 {
		slots, err := API.DoctorAvailability(apiCtx(c, providerToken(c)), doctorID)
		if err != nil {
			// Unset schedules come back as errors from the backend;
			// start from the stock weekday template.
			log.Printf("Error fetching availability for doctor %d: %v", doctorID, err)
			slots = demo.DefaultWeekAvailability()
		}
		data["Schedule"] = scheduleRows(slots)
	}

	return render(c, "availability", data)
}

// SaveAvailability collects the edited grid, keeps only days with both times
// set, and persists the week in one bulk call.
func SaveAvailability(c *fiber.Ctx) error {
	id := sid(c)
	doctorID, err := strconv.Atoi(c.FormValue("doctor_id"))
	if err != nil || doctorID == 0 {
		setFlashError(c, id, "Please select a doctor first")
		return c.Redirect("/availability")
	}

	slots := make([]models.AvailabilitySlot, 0, 7)
	for day := 0; day < 7; day++ {
		start := c.FormValue(fmt.Sprintf("start_time_%d", day))
		end := c.FormValue(fmt.Sprintf("end_time_%d", day))
		if start == "" || end == "" {
			continue
		}
		duration, err := strconv.Atoi(c.FormValue(fmt.Sprintf("slot_duration_%d", day)))
		if err != nil || duration <= 0 {
			duration = 30
		}
		slots = append(slots, models.AvailabilitySlot{
			DayOfWeek:    day,
			StartTime:    start,
			EndTime:      end,
			SlotDuration: duration,
		})
	}

	if err := API.SaveAvailability(apiCtx(c, providerToken(c)), doctorID, slots); err != nil {
		log.Printf("Error saving availability: %v", err)
		setFlashError(c, id, "Failed to save availability")
	} else {
		setFlash(c, id, "Availability updated successfully!")
	}
	return c.Redirect(fmt.Sprintf("/availability?doctor_id=%d", doctorID))
}
