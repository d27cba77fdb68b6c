package models

import (
	"strconv"
	"strings"
)

// AvailabilitySlot is a weekly working window for a doctor, keyed by
// (doctor, day_of_week). Times are "HH:MM" in 24h, duration in minutes.
type AvailabilitySlot struct {
	DayOfWeek    int    `json:"day_of_week"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	SlotDuration int    `json:"slot_duration"`
}

// DayNames indexes day_of_week (0 = Sunday).
var DayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// SlotCount computes how many bookable slots fit in the window. ok is false
// when either time is missing, a time is malformed, or the duration is not
// positive; such days render as not available.
func (s AvailabilitySlot) SlotCount() (count int, ok bool) {
	if s.StartTime == "" || s.EndTime == "" || s.SlotDuration <= 0 {
		return 0, false
	}
	start, err := parseMinutes(s.StartTime)
	if err != nil {
		return 0, false
	}
	end, err := parseMinutes(s.EndTime)
	if err != nil {
		return 0, false
	}
	if end <= start {
		return 0, false
	}
	return (end - start) / s.SlotDuration, true
}

func parseMinutes(hhmm string) (int, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, strconv.ErrSyntax
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}
