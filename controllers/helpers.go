package controllers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/healthsetu/provider-portal/api"
	"github.com/healthsetu/provider-portal/session"
)

// Package-level collaborators, wired once at startup.
var (
	API      *api.Client
	Sessions session.Store
)

func Init(client *api.Client, store session.Store) {
	API = client
	Sessions = store
}

// sid returns the session id placed in locals by the route guard, or "".
func sid(c *fiber.Ctx) string {
	if v, ok := c.Locals("sessionID").(string); ok {
		return v
	}
	return ""
}

// currentSession resolves the session id from locals or, on unguarded
// routes, from the cookie directly. Empty when neither is present.
func currentSession(c *fiber.Ctx) string {
	if v := sid(c); v != "" {
		return v
	}
	if cookie := c.Cookies(session.CookieName); cookie != "" {
		if id, err := session.ParseToken(cookie); err == nil {
			return id
		}
	}
	return ""
}

// ensureSession returns the current session id, minting a fresh session and
// cookie when the request does not carry one.
func ensureSession(c *fiber.Ctx) (string, error) {
	if id := currentSession(c); id != "" {
		return id, nil
	}
	id := session.NewID()
	signed, err := session.SignedToken(id)
	if err != nil {
		return "", err
	}
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    signed,
		Expires:  time.Now().Add(session.TTL),
		HTTPOnly: true,
	})
	return id, nil
}

func setFlash(c *fiber.Ctx, id, message string) {
	if id == "" {
		return
	}
	if err := Sessions.Set(c.Context(), id, session.KeyFlash, message); err != nil {
		log.Printf("Error storing flash message: %v", err)
	}
}

func setFlashError(c *fiber.Ctx, id, message string) {
	if id == "" {
		return
	}
	if err := Sessions.Set(c.Context(), id, session.KeyFlashError, message); err != nil {
		log.Printf("Error storing flash message: %v", err)
	}
}

// render draws a view inside the shared layout, injecting the request path
// and any pending one-shot flash messages.
func render(c *fiber.Ctx, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Path"] = c.Path()
	if id := currentSession(c); id != "" {
		if flash, _ := Sessions.Pop(c.Context(), id, session.KeyFlash); flash != "" {
			data["Flash"] = flash
		}
		if flashErr, _ := Sessions.Pop(c.Context(), id, session.KeyFlashError); flashErr != "" {
			data["FlashError"] = flashErr
		}
	}
	return c.Render(name, data, "layout")
}

// apiCtx builds the outbound request context carrying the bearer token.
func apiCtx(c *fiber.Ctx, token string) context.Context {
	return api.WithToken(c.Context(), token)
}

// providerToken reads the provider bearer token set by the guard.
func providerToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(session.KeyHealthcareToken).(string); ok {
		return v
	}
	return ""
}

// superAdminToken reads the super-admin bearer token set by the guard.
func superAdminToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(session.KeySuperAdminToken).(string); ok {
		return v
	}
	return ""
}
