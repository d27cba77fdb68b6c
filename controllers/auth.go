package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/healthsetu/provider-portal/api"
	"github.com/healthsetu/provider-portal/demo"
	"github.com/healthsetu/provider-portal/session"
	"github.com/healthsetu/provider-portal/utils"
)

type loginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

var loginMessages = map[string]string{
	"Email.required":    "Email is required",
	"Email.email":       "Invalid email address",
	"Password.required": "Password is required",
	"Password.min":      "Password must be at least 6 characters",
}

// ShowLogin renders the provider login form.
func ShowLogin(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Title": "Healthcare Provider Login"})
}

// Login validates the form, honors the offline demo shortcut, and otherwise
// authenticates against the marketplace API.
func Login(c *fiber.Ctx) error {
	form := new(loginForm)
	if err := c.BodyParser(form); err != nil {
		return render(c, "login", fiber.Map{
			"Title":        "Healthcare Provider Login",
			"ErrorMessage": "Cannot parse form",
		})
	}

	if errs := utils.Validate(form, loginMessages); errs != nil {
		return render(c, "login", fiber.Map{
			"Title":  "Healthcare Provider Login",
			"Errors": errs,
			"Email":  form.Email,
		})
	}

	// Demo login fallback: fixed credentials log in without touching the API.
	if form.Email == demo.Email && form.Password == demo.Password {
		id, err := ensureSession(c)
		if err != nil {
			return loginError(c, form.Email, "Login failed: session error")
		}
		storeProviderSession(c, id, demo.Token, demo.ProviderID, form.Email)
		setFlash(c, id, "Demo login successful! Welcome to the healthcare dashboard.")
		return c.Redirect("/dashboard")
	}

	result, err := API.Login(c.Context(), form.Email, form.Password)
	if err != nil {
		log.Printf("Login error for %s: %v", form.Email, err)
		switch {
		case api.StatusOf(err) == fiber.StatusNotFound:
			return loginError(c, form.Email, "API endpoint not found. Please check the backend configuration.")
		case api.StatusOf(err) == fiber.StatusInternalServerError:
			return loginError(c, form.Email, "Server error. Please try again later.")
		case api.IsNetworkError(err):
			return loginError(c, form.Email, "Network error. Please check your connection.")
		default:
			return loginError(c, form.Email, "Login failed: "+err.Error())
		}
	}

	id, err := ensureSession(c)
	if err != nil {
		return loginError(c, form.Email, "Login failed: session error")
	}
	storeProviderSession(c, id, result.Token, result.ProviderID, form.Email)
	setFlash(c, id, "Login successful!")
	return c.Redirect("/dashboard")
}

// Logout drops the provider's session state and returns to the login form.
func Logout(c *fiber.Ctx) error {
	if id := currentSession(c); id != "" {
		Sessions.Remove(c.Context(), id, session.KeyHealthcareToken)
		Sessions.Remove(c.Context(), id, session.KeyProviderID)
		Sessions.Remove(c.Context(), id, session.KeyUserEmail)
	}
	return c.Redirect("/login")
}

func storeProviderSession(c *fiber.Ctx, id, token, providerID, email string) {
	Sessions.Set(c.Context(), id, session.KeyHealthcareToken, token)
	Sessions.Set(c.Context(), id, session.KeyProviderID, providerID)
	Sessions.Set(c.Context(), id, session.KeyUserEmail, email)
}

func loginError(c *fiber.Ctx, email, message string) error {
	return render(c, "login", fiber.Map{
		"Title":        "Healthcare Provider Login",
		"ErrorMessage": message,
		"Email":        email,
	})
}
