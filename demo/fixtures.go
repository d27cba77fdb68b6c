// Package demo holds the sample datasets the portal falls back to for the
// resources the marketplace API does not expose list endpoints for, and for
// the offline demo login.
package demo

import "github.com/healthsetu/provider-portal/models"

// Fixed credentials for the offline demo account.
const (
	Email      = "demo@hospital.com"
	Password   = "demo123"
	Token      = "demo-token-123"
	ProviderID = "demo-provider-123"
)

// Doctors returns the sample doctor list.
func Doctors() []models.Doctor {
	return []models.Doctor{
		{
			ID:              1,
			Name:            "Dr. Sharma",
			Specialization:  "Cardiology",
			ExperienceYears: 15,
			Qualification:   "MBBS, MD (Cardiology)",
			ConsultationFee: 1500,
			IsAvailable:     true,
			Rating:          4.8,
		},
		{
			ID:              2,
			Name:            "Dr. Patel",
			Specialization:  "Dermatology",
			ExperienceYears: 12,
			Qualification:   "MBBS, MD (Dermatology)",
			ConsultationFee: 1200,
			IsAvailable:     true,
			Rating:          4.6,
		},
	}
}

// Appointments returns the sample appointment list.
func Appointments() []models.Appointment {
	return []models.Appointment{
		{
			ID:              1,
			AppointmentDate: "2024-01-15",
			AppointmentTime: "09:00",
			DoctorName:      "Dr. Sharma",
			Specialization:  "Cardiology",
			PatientPhone:    "9876543210",
			Status:          models.StatusConfirmed,
			ConsultationFee: 1500,
			Symptoms:        "Chest pain and shortness of breath",
		},
		{
			ID:              2,
			AppointmentDate: "2024-01-15",
			AppointmentTime: "10:30",
			DoctorName:      "Dr. Patel",
			Specialization:  "Dermatology",
			PatientPhone:    "9876543211",
			Status:          models.StatusPending,
			ConsultationFee: 1200,
			Symptoms:        "Skin rash and itching",
		},
		{
			ID:              3,
			AppointmentDate: "2024-01-14",
			AppointmentTime: "14:00",
			DoctorName:      "Dr. Sharma",
			Specialization:  "Cardiology",
			PatientPhone:    "9876543212",
			Status:          models.StatusCompleted,
			ConsultationFee: 1500,
			Symptoms:        "Regular checkup",
		},
	}
}

// Dashboard returns the sample provider overview.
func Dashboard() models.Dashboard {
	return models.Dashboard{
		TodayAppointments: []models.Appointment{
			{
				ID:              1,
				AppointmentTime: "09:00",
				DoctorName:      "Dr. Sharma",
				Specialization:  "Cardiology",
				PatientPhone:    "9876543210",
				Status:          models.StatusConfirmed,
			},
			{
				ID:              2,
				AppointmentTime: "10:30",
				DoctorName:      "Dr. Patel",
				Specialization:  "Dermatology",
				PatientPhone:    "9876543211",
				Status:          models.StatusPending,
			},
		},
		PendingCount:    5,
		TotalRevenue:    25000,
		TotalCommission: 2500,
	}
}

// DefaultWeekAvailability is the Monday-to-Friday 9-to-5 schedule used when a
// doctor's slots cannot be fetched.
func DefaultWeekAvailability() []models.AvailabilitySlot {
	slots := make([]models.AvailabilitySlot, 0, 5)
	for day := 1; day <= 5; day++ {
		slots = append(slots, models.AvailabilitySlot{
			DayOfWeek:    day,
			StartTime:    "09:00",
			EndTime:      "17:00",
			SlotDuration: 30,
		})
	}
	return slots
}
