package controllers

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/healthsetu/provider-portal/api"
	"github.com/healthsetu/provider-portal/models"
	"github.com/healthsetu/provider-portal/session"
	"github.com/healthsetu/provider-portal/utils"
)

type superAdminLoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

var superAdminLoginMessages = map[string]string{
	"Email.required":    "Email is required",
	"Email.email":       "Invalid email address",
	"Password.required": "Password is required",
}

// inFlight is the per-session latch preventing duplicate concurrent
// approve/reject/reset submissions.
var inFlight = struct {
	mu  sync.Mutex
	ids map[string]struct{}
}{ids: make(map[string]struct{})}

func beginAction(id string) bool {
	inFlight.mu.Lock()
	defer inFlight.mu.Unlock()
	if _, busy := inFlight.ids[id]; busy {
		return false
	}
	inFlight.ids[id] = struct{}{}
	return true
}

func endAction(id string) {
	inFlight.mu.Lock()
	defer inFlight.mu.Unlock()
	delete(inFlight.ids, id)
}

// ShowSuperAdminLogin renders the platform operator login form.
func ShowSuperAdminLogin(c *fiber.Ctx) error {
	return render(c, "superadmin_login", fiber.Map{"Title": "Super Admin Login"})
}

// SuperAdminLogin authenticates the operator and stores the console token.
func SuperAdminLogin(c *fiber.Ctx) error {
	form := new(superAdminLoginForm)
	if err := c.BodyParser(form); err != nil {
		return render(c, "superadmin_login", fiber.Map{
			"Title":        "Super Admin Login",
			"ErrorMessage": "Cannot parse form",
		})
	}

	if errs := utils.Validate(form, superAdminLoginMessages); errs != nil {
		return render(c, "superadmin_login", fiber.Map{
			"Title":  "Super Admin Login",
			"Errors": errs,
			"Email":  form.Email,
		})
	}

	token, err := API.SuperAdminLogin(c.Context(), form.Email, form.Password)
	if err != nil {
		log.Printf("Super admin login error: %v", err)
		var message string
		switch {
		case api.IsUnauthorized(err):
			message = "Invalid credentials"
		case api.IsNetworkError(err):
			message = "Network error. Please check your connection."
		default:
			message = "Login failed: " + err.Error()
		}
		return render(c, "superadmin_login", fiber.Map{
			"Title":        "Super Admin Login",
			"ErrorMessage": message,
			"Email":        form.Email,
		})
	}

	id, err := ensureSession(c)
	if err != nil {
		return render(c, "superadmin_login", fiber.Map{
			"Title":        "Super Admin Login",
			"ErrorMessage": "Login failed: session error",
		})
	}
	Sessions.Set(c.Context(), id, session.KeySuperAdminToken, token)
	return c.Redirect("/super-admin")
}

// SuperAdminLogout drops only the console token; a provider login in the
// same browser session survives.
func SuperAdminLogout(c *fiber.Ctx) error {
	if id := currentSession(c); id != "" {
		Sessions.Remove(c.Context(), id, session.KeySuperAdminToken)
	}
	return c.Redirect("/super-admin/login")
}

// SuperAdminConsole renders the two-tab console: pending registrations and
// approved providers. Freshly generated credentials staged by an approve or
// reset action are revealed exactly once here.
func SuperAdminConsole(c *fiber.Ctx) error {
	id := sid(c)
	ctx := apiCtx(c, superAdminToken(c))

	pending, err := API.PendingRegistrations(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			return forceSuperAdminLogout(c)
		}
		log.Printf("Error fetching pending registrations: %v", err)
		return renderConsole(c, id, fiber.Map{
			"ErrorMessage": "Failed to load data. Please refresh the page.",
		})
	}

	approved, err := API.ApprovedProviders(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			return forceSuperAdminLogout(c)
		}
		log.Printf("Error fetching approved providers: %v", err)
		return renderConsole(c, id, fiber.Map{
			"ErrorMessage": "Failed to load data. Please refresh the page.",
			"Pending":      pending,
		})
	}

	return renderConsole(c, id, fiber.Map{
		"Pending":  pending,
		"Approved": approved,
	})
}

func renderConsole(c *fiber.Ctx, id string, data fiber.Map) error {
	tab := c.Query("tab", "pending")
	if tab != "approved" {
		tab = "pending"
	}
	data["Title"] = "Super Admin Dashboard"
	data["Tab"] = tab

	pending, _ := data["Pending"].([]models.Registration)
	approved, _ := data["Approved"].([]models.Provider)
	data["PendingCount"] = len(pending)
	data["ApprovedCount"] = len(approved)
	data["TotalCount"] = len(pending) + len(approved)

	// One-shot credential reveal staged by approve/reset.
	if raw, _ := Sessions.Pop(c.Context(), id, session.KeyAdminCredentials); raw != "" {
		var creds models.AdminCredentials
		if err := json.Unmarshal([]byte(raw), &creds); err == nil {
			data["Credentials"] = creds
		}
	}

	return render(c, "superadmin", data)
}

// ApproveRegistration approves a pending registration and stages the
// generated admin credentials for their single reveal.
func ApproveRegistration(c *fiber.Ctx) error {
	return superAdminAction(c, "pending", func(c *fiber.Ctx, id string) error {
		creds, err := API.ApproveRegistration(apiCtx(c, superAdminToken(c)), c.Params("id"))
		if err != nil {
			if api.IsUnauthorized(err) {
				return errUnauthorizedAction
			}
			log.Printf("Error approving registration: %v", err)
			setFlashError(c, id, "Failed to approve registration.")
			return nil
		}
		setFlash(c, id, "Registration approved successfully!")
		if creds != nil {
			stageCredentials(c, id, *creds)
		}
		return nil
	})
}

// RejectRegistration rejects a pending registration.
func RejectRegistration(c *fiber.Ctx) error {
	return superAdminAction(c, "pending", func(c *fiber.Ctx, id string) error {
		reason := c.FormValue("reason", "Rejected by admin")
		err := API.RejectRegistration(apiCtx(c, superAdminToken(c)), c.Params("id"), reason)
		if err != nil {
			if api.IsUnauthorized(err) {
				return errUnauthorizedAction
			}
			log.Printf("Error rejecting registration: %v", err)
			setFlashError(c, id, "Failed to reject registration.")
			return nil
		}
		setFlash(c, id, "Registration rejected.")
		return nil
	})
}

// ResetAdminPassword rotates a provider admin's password and stages the new
// credential pair for its single reveal.
func ResetAdminPassword(c *fiber.Ctx) error {
	return superAdminAction(c, "approved", func(c *fiber.Ctx, id string) error {
		creds, err := API.ResetAdminPassword(apiCtx(c, superAdminToken(c)), c.Params("id"))
		if err != nil {
			if api.IsUnauthorized(err) {
				return errUnauthorizedAction
			}
			log.Printf("Error resetting admin password: %v", err)
			setFlashError(c, id, "Failed to reset password.")
			return nil
		}
		setFlash(c, id, "Password reset successfully!")
		if creds != nil {
			stageCredentials(c, id, *creds)
		}
		return nil
	})
}

var errUnauthorizedAction = &api.Error{Status: fiber.StatusUnauthorized, Message: "session expired"}

// superAdminAction wraps a console mutation with the in-flight latch and the
// 401 forced-logout rule, then redirects back to the console tab.
func superAdminAction(c *fiber.Ctx, tab string, action func(c *fiber.Ctx, id string) error) error {
	id := sid(c)
	if !beginAction(id) {
		setFlashError(c, id, "Another request is already being processed.")
		return c.Redirect("/super-admin?tab=" + tab)
	}
	defer endAction(id)

	if err := action(c, id); err != nil {
		return forceSuperAdminLogout(c)
	}
	return c.Redirect("/super-admin?tab=" + tab)
}

func stageCredentials(c *fiber.Ctx, id string, creds models.AdminCredentials) {
	raw, err := json.Marshal(creds)
	if err != nil {
		log.Printf("Error staging admin credentials: %v", err)
		return
	}
	Sessions.Set(c.Context(), id, session.KeyAdminCredentials, string(raw))
}

// forceSuperAdminLogout clears the console token after a 401 and returns to
// the operator login form.
func forceSuperAdminLogout(c *fiber.Ctx) error {
	if id := currentSession(c); id != "" {
		Sessions.Remove(c.Context(), id, session.KeySuperAdminToken)
	}
	return c.Redirect("/super-admin/login")
}
