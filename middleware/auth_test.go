package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/healthsetu/provider-portal/session"
)

func newGuardedApp(t *testing.T) (*fiber.App, *session.MemoryStore) {
	t.Helper()
	store := session.NewMemoryStore()
	Init(store)

	app := fiber.New()
	app.Get("/dashboard", Protected(), func(c *fiber.Ctx) error {
		return c.SendString("provider:" + c.Locals("providerID").(string))
	})
	app.Get("/super-admin", SuperAdminProtected(), func(c *fiber.Ctx) error {
		return c.SendString("console")
	})
	return app, store
}

func sessionCookie(t *testing.T, sid string) *http.Cookie {
	t.Helper()
	value, err := session.SignedToken(sid)
	assert.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: value}
}

func TestProtectedWithoutCookie(t *testing.T) {
	app, _ := newGuardedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestProtectedWithGarbageCookie(t *testing.T) {
	app, _ := newGuardedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "not-a-jwt"})
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestProtectedWithoutStoredToken(t *testing.T) {
	// A valid cookie whose session holds no provider token still bounces.
	app, _ := newGuardedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(sessionCookie(t, "empty-session"))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestProtectedWithStoredToken(t *testing.T) {
	app, store := newGuardedApp(t)
	ctx := context.Background()
	assert.NoError(t, store.Set(ctx, "s1", session.KeyHealthcareToken, "tok"))
	assert.NoError(t, store.Set(ctx, "s1", session.KeyProviderID, "p-42"))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(sessionCookie(t, "s1"))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "provider:p-42", string(body))
}

func TestSuperAdminGuardRedirectsToItsOwnLogin(t *testing.T) {
	app, store := newGuardedApp(t)

	// A provider token alone does not open the console.
	ctx := context.Background()
	assert.NoError(t, store.Set(ctx, "s2", session.KeyHealthcareToken, "tok"))

	req := httptest.NewRequest(http.MethodGet, "/super-admin", nil)
	req.AddCookie(sessionCookie(t, "s2"))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/super-admin/login", resp.Header.Get("Location"))
}

func TestSuperAdminGuardWithToken(t *testing.T) {
	app, store := newGuardedApp(t)
	assert.NoError(t, store.Set(context.Background(), "s3", session.KeySuperAdminToken, "admintok"))

	req := httptest.NewRequest(http.MethodGet, "/super-admin", nil)
	req.AddCookie(sessionCookie(t, "s3"))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
