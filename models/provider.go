package models

// Registration is a facility signup awaiting super-admin review.
type Registration struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Website   string `json:"website,omitempty"`
	CreatedAt string `json:"created_at"`
}

// Provider is an approved healthcare facility.
type Provider struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Website    string `json:"website,omitempty"`
	ApprovedAt string `json:"approved_at"`
}

// Dashboard is the provider overview payload.
type Dashboard struct {
	TodayAppointments []Appointment `json:"today_appointments"`
	PendingCount      int           `json:"pending_count"`
	TotalRevenue      float64       `json:"total_revenue"`
	TotalCommission   float64       `json:"total_commission"`
}
