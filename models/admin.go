package models

// AdminCredentials are generated server-side on approval or password reset
// and shown exactly once; the portal never persists them past that render.
type AdminCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Admin is the provider-scoped login account created on approval.
type Admin struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
