package models

// Doctor belongs to a provider and is created through the add-doctor form.
type Doctor struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Specialization  string  `json:"specialization"`
	ExperienceYears int     `json:"experience_years"`
	Qualification   string  `json:"qualification"`
	ConsultationFee float64 `json:"consultation_fee"`
	IsAvailable     bool    `json:"is_available"`
	Rating          float64 `json:"rating"`
}

// Specialization is an option in the add-doctor select.
type Specialization struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
