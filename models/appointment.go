package models

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment mirrors the marketplace API record verbatim.
type Appointment struct {
	ID              int               `json:"id"`
	AppointmentDate string            `json:"appointment_date"`
	AppointmentTime string            `json:"appointment_time"`
	DoctorName      string            `json:"doctor_name"`
	Specialization  string            `json:"specialization"`
	PatientPhone    string            `json:"patient_phone"`
	Status          AppointmentStatus `json:"status"`
	ConsultationFee float64           `json:"consultation_fee"`
	Symptoms        string            `json:"symptoms"`
}

// FilterAppointments returns the appointments whose status equals the filter,
// preserving order. The "all" filter returns the full list.
func FilterAppointments(appointments []Appointment, status string) []Appointment {
	if status == "all" || status == "" {
		return appointments
	}
	filtered := make([]Appointment, 0, len(appointments))
	for _, a := range appointments {
		if string(a.Status) == status {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// CountByStatus counts appointments in the given status.
func CountByStatus(appointments []Appointment, status AppointmentStatus) int {
	count := 0
	for _, a := range appointments {
		if a.Status == status {
			count++
		}
	}
	return count
}

// CompletedRevenue sums the consultation fees of completed appointments.
func CompletedRevenue(appointments []Appointment) float64 {
	var total float64
	for _, a := range appointments {
		if a.Status == StatusCompleted {
			total += a.ConsultationFee
		}
	}
	return total
}
