package session

import (
	"crypto/rand"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// CookieName is the browser cookie carrying the signed session id.
const CookieName = "portal_session"

// Secret returns the HMAC key for the session cookie.
func Secret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "portal_secret_key" // Replace with secure key in production
	}
	return []byte(secret)
}

// NewID mints a random session id.
func NewID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return fmt.Sprintf("%x", b)
}

// SignedToken wraps a session id in an HS256 JWT for the cookie.
func SignedToken(sid string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(TTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(Secret())
}

// ParseToken validates a cookie value and returns the session id inside it.
func ParseToken(value string) (string, error) {
	token, err := jwt.Parse(value, func(t *jwt.Token) (interface{}, error) {
		return Secret(), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid session cookie")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid session claims")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", fmt.Errorf("no session id in cookie")
	}
	return sid, nil
}
