package utils

import "strings"

var statusClasses = map[string]string{
	"pending":   "status-pending",
	"confirmed": "status-confirmed",
	"completed": "status-completed",
	"cancelled": "status-cancelled",
}

// StatusBadgeClass maps an appointment status to its badge style. Unknown
// statuses fall back to the pending style.
func StatusBadgeClass(status string) string {
	if class, ok := statusClasses[status]; ok {
		return class
	}
	return "status-pending"
}

// StatusLabel capitalizes a status for display.
func StatusLabel(status string) string {
	if status == "" {
		return ""
	}
	return strings.ToUpper(status[:1]) + status[1:]
}
