package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/healthsetu/provider-portal/api"
	"github.com/healthsetu/provider-portal/utils"
)

type registerForm struct {
	Name    string `form:"name" validate:"required,min=3"`
	Type    string `form:"type" validate:"required,oneof=hospital clinic diagnostic_center pharmacy"`
	Address string `form:"address" validate:"required,min=10"`
	Phone   string `form:"phone" validate:"required,phone10"`
	Email   string `form:"email" validate:"required,email"`
	Website string `form:"website"`
}

var registerMessages = map[string]string{
	"Name.required":    "Facility name is required",
	"Name.min":         "Name must be at least 3 characters",
	"Type.required":    "Facility type is required",
	"Type.oneof":       "Facility type is required",
	"Address.required": "Address is required",
	"Address.min":      "Address must be at least 10 characters",
	"Phone.required":   "Phone number is required",
	"Phone.phone10":    "Please enter a valid 10-digit phone number",
	"Email.required":   "Email is required",
	"Email.email":      "Invalid email address",
}

// ShowRegistration renders the facility registration form.
func ShowRegistration(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Title": "Register Healthcare Provider"})
}

// Register validates the form before any network call, submits the
// registration, and renders the verification-pending panel on success.
func Register(c *fiber.Ctx) error {
	form := new(registerForm)
	if err := c.BodyParser(form); err != nil {
		return render(c, "register", fiber.Map{
			"Title":        "Register Healthcare Provider",
			"ErrorMessage": "Cannot parse form",
		})
	}

	if errs := utils.Validate(form, registerMessages); errs != nil {
		return render(c, "register", fiber.Map{
			"Title":  "Register Healthcare Provider",
			"Errors": errs,
			"Form":   form,
		})
	}

	err := API.RegisterProvider(c.Context(), api.RegisterProviderRequest{
		Name:    form.Name,
		Type:    form.Type,
		Address: form.Address,
		Phone:   form.Phone,
		Email:   form.Email,
		Website: form.Website,
	})
	if err != nil {
		log.Printf("Registration error for %s: %v", form.Email, err)
		var message string
		switch {
		case api.StatusOf(err) == fiber.StatusConflict:
			message = "Email already registered. Please use a different email or login."
		case api.StatusOf(err) == fiber.StatusBadRequest:
			message = "Invalid data. Please check your information."
		case api.IsNetworkError(err):
			message = "Network error. Please check your connection."
		default:
			message = "Registration failed: " + err.Error()
		}
		return render(c, "register", fiber.Map{
			"Title":        "Register Healthcare Provider",
			"ErrorMessage": message,
			"Form":         form,
		})
	}

	return render(c, "register_success", fiber.Map{"Title": "Registration Submitted"})
}
