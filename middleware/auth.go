package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"github.com/healthsetu/provider-portal/session"
)

// Sessions is the shared session store, set once at startup.
var Sessions session.Store

func Init(store session.Store) {
	Sessions = store
}

// Protected gates provider views. It validates the session cookie and
// requires a stored provider token; the token itself is not verified against
// the backend, so a stale one passes here and fails on the first API call.
func Protected() fiber.Handler {
	return guard(session.KeyHealthcareToken, "/login", func(c *fiber.Ctx, sid string) error {
		providerID, _ := Sessions.Get(c.Context(), sid, session.KeyProviderID)
		email, _ := Sessions.Get(c.Context(), sid, session.KeyUserEmail)
		c.Locals("providerID", providerID)
		c.Locals("userEmail", email)
		return c.Next()
	})
}

// SuperAdminProtected gates the super-admin console on its own token.
func SuperAdminProtected() fiber.Handler {
	return guard(session.KeySuperAdminToken, "/super-admin/login", func(c *fiber.Ctx, _ string) error {
		return c.Next()
	})
}

func guard(tokenKey, loginPath string, onSuccess func(c *fiber.Ctx, sid string) error) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  session.Secret(),
		TokenLookup: "cookie:" + session.CookieName,
		ErrorHandler: func(c *fiber.Ctx, _ error) error {
			return c.Redirect(loginPath)
		},
		SuccessHandler: func(c *fiber.Ctx) error {
			sid, ok := sessionID(c)
			if !ok {
				return c.Redirect(loginPath)
			}
			token, err := Sessions.Get(c.Context(), sid, tokenKey)
			if err != nil || token == "" {
				return c.Redirect(loginPath)
			}
			c.Locals("sessionID", sid)
			c.Locals(tokenKey, token)
			return onSuccess(c, sid)
		},
	})
}

// sessionID extracts the session id claim set by the JWT middleware.
func sessionID(c *fiber.Ctx) (string, bool) {
	userToken := c.Locals("user")
	if userToken == nil {
		return "", false
	}
	token, ok := userToken.(*jwt.Token)
	if !ok {
		return "", false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", false
	}
	return sid, true
}
