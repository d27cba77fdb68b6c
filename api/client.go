// Package api is the portal's client for the healthcare marketplace REST API.
// All outgoing requests go through one resty client; the bearer token is
// attached by a request-level interceptor reading the call's context.
package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/healthsetu/provider-portal/models"
)

type tokenKey struct{}

// WithToken returns a context whose API calls carry the given bearer token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// Client wraps the marketplace API endpoints.
type Client struct {
	http *resty.Client
}

// NewClient builds a client against the given base URL.
func NewClient(baseURL string) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token, ok := req.Context().Value(tokenKey{}).(string); ok && token != "" {
			req.SetAuthToken(token)
		}
		return nil
	})

	return &Client{http: http}
}

// FlexID tolerates the backend sending ids as numbers or strings.
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		s = ""
	}
	*f = FlexID(s)
	return nil
}

// LoginResult is what a successful provider login yields.
type LoginResult struct {
	Token      string
	ProviderID string
}

// Login authenticates a provider admin.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var out struct {
		Success    bool   `json:"success"`
		Token      string `json:"token"`
		ProviderID FlexID `json:"provider_id"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		Post("/healthcare/admin/login")
	if err := checkResponse(resp, err); err != nil {
		return LoginResult{}, err
	}
	if !out.Success {
		return LoginResult{}, &Error{Status: resp.StatusCode(), Message: "login rejected"}
	}
	return LoginResult{Token: out.Token, ProviderID: string(out.ProviderID)}, nil
}

// SuperAdminLogin authenticates the platform operator and returns the token.
func (c *Client) SuperAdminLogin(ctx context.Context, email, password string) (string, error) {
	var out struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		Post("/healthcare/super-admin/login")
	if err := checkResponse(resp, err); err != nil {
		return "", err
	}
	if !out.Success {
		return "", &Error{Status: resp.StatusCode(), Message: "login rejected"}
	}
	return out.Token, nil
}

// RegisterProviderRequest is the facility registration payload.
type RegisterProviderRequest struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website,omitempty"`
}

// RegisterProvider submits a facility registration.
func (c *Client) RegisterProvider(ctx context.Context, req RegisterProviderRequest) error {
	var out struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/healthcare/provider/register")
	if err := checkResponse(resp, err); err != nil {
		return err
	}
	if !out.Success {
		msg := out.Message
		if msg == "" {
			msg = "Registration failed. Please try again."
		}
		return &Error{Status: resp.StatusCode(), Message: msg}
	}
	return nil
}

// Dashboard fetches the provider overview.
func (c *Client) Dashboard(ctx context.Context, providerID string) (models.Dashboard, error) {
	var out struct {
		Success   bool             `json:"success"`
		Dashboard models.Dashboard `json:"dashboard"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/healthcare/provider/%s/dashboard", providerID))
	if err := checkResponse(resp, err); err != nil {
		return models.Dashboard{}, err
	}
	return out.Dashboard, nil
}

// Specializations lists the doctor specialization options.
func (c *Client) Specializations(ctx context.Context) ([]models.Specialization, error) {
	var out struct {
		Success         bool                    `json:"success"`
		Specializations []models.Specialization `json:"specializations"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/healthcare/specializations")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return out.Specializations, nil
}

// AddDoctorRequest is the add-doctor payload.
type AddDoctorRequest struct {
	ProviderID      string  `json:"provider_id"`
	Name            string  `json:"name"`
	Specialization  string  `json:"specialization"`
	ExperienceYears int     `json:"experience_years"`
	Qualification   string  `json:"qualification"`
	ConsultationFee float64 `json:"consultation_fee"`
	Bio             string  `json:"bio,omitempty"`
}

// AddDoctor registers a doctor under the provider.
func (c *Client) AddDoctor(ctx context.Context, req AddDoctorRequest) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/healthcare/doctor/add")
	return checkResponse(resp, err)
}

// UpdateAppointmentStatus moves an appointment to a new status.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"status": status}).
		Put(fmt.Sprintf("/healthcare/appointment/%s/status", appointmentID))
	return checkResponse(resp, err)
}

// DoctorAvailability fetches a doctor's weekly slots.
func (c *Client) DoctorAvailability(ctx context.Context, doctorID int) ([]models.AvailabilitySlot, error) {
	var out struct {
		Success      bool                      `json:"success"`
		Availability []models.AvailabilitySlot `json:"availability"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/healthcare/doctor/%d/availability", doctorID))
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return out.Availability, nil
}

// SaveAvailability persists a doctor's weekly slots in bulk.
func (c *Client) SaveAvailability(ctx context.Context, doctorID int, slots []models.AvailabilitySlot) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"doctor_id":          doctorID,
			"availability_slots": slots,
		}).
		Post("/healthcare/doctor/availability")
	return checkResponse(resp, err)
}

// PendingRegistrations lists facility signups awaiting review.
func (c *Client) PendingRegistrations(ctx context.Context) ([]models.Registration, error) {
	var out struct {
		Registrations []models.Registration `json:"registrations"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/healthcare/admin/pending-registrations")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return out.Registrations, nil
}

// ApprovedProviders lists approved facilities.
func (c *Client) ApprovedProviders(ctx context.Context) ([]models.Provider, error) {
	var out struct {
		Providers []models.Provider `json:"providers"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/healthcare/admin/approved-providers")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return out.Providers, nil
}

// ApproveRegistration approves a pending registration. When the backend
// generates admin credentials it returns them here, once.
func (c *Client) ApproveRegistration(ctx context.Context, registrationID string) (*models.AdminCredentials, error) {
	var out struct {
		Success          bool                     `json:"success"`
		AdminCredentials *models.AdminCredentials `json:"admin_credentials"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Post("/healthcare/admin/approve-registration/" + registrationID)
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, &Error{Status: resp.StatusCode(), Message: "approval rejected"}
	}
	return out.AdminCredentials, nil
}

// RejectRegistration rejects a pending registration with a reason.
func (c *Client) RejectRegistration(ctx context.Context, registrationID, reason string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"reason": reason}).
		Post("/healthcare/admin/reject-registration/" + registrationID)
	return checkResponse(resp, err)
}

// ResetAdminPassword rotates a provider admin's password and returns the new
// credential pair for its one-time reveal. The admin record is optional in
// the reset response; when missing it is fetched separately.
func (c *Client) ResetAdminPassword(ctx context.Context, adminID string) (*models.AdminCredentials, error) {
	var out struct {
		Success     bool         `json:"success"`
		NewPassword string       `json:"new_password"`
		Admin       models.Admin `json:"admin"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Post("/healthcare/admin/reset-password/" + adminID)
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	if !out.Success || out.NewPassword == "" {
		return nil, &Error{Status: resp.StatusCode(), Message: "password reset rejected"}
	}
	if out.Admin.Username == "" {
		admin, err := c.AdminDetail(ctx, adminID)
		if err != nil {
			return nil, err
		}
		out.Admin = admin
	}
	return &models.AdminCredentials{Username: out.Admin.Username, Password: out.NewPassword}, nil
}

// AdminDetail fetches a provider admin account.
func (c *Client) AdminDetail(ctx context.Context, adminID string) (models.Admin, error) {
	var out struct {
		Success bool         `json:"success"`
		Admin   models.Admin `json:"admin"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/healthcare/admin/" + adminID)
	if err := checkResponse(resp, err); err != nil {
		return models.Admin{}, err
	}
	return out.Admin, nil
}
