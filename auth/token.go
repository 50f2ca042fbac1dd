// Package auth verifies Supabase-style session tokens. The application only
// consumes the user id carried in the token; profile and session management
// live in the auth backend.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// localsUserID is the fiber locals key the middleware stores the user id
// under.
const localsUserID = "userID"

// ErrNoUser indicates the request carried no usable identity.
var ErrNoUser = errors.New("no user identity on request")

// Verifier checks HS256 session tokens signed with the project secret.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a verifier for the given signing secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// UserID extracts the subject claim from a signed token.
func (v *Verifier) UserID(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return "", err
	}
	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", errors.New("token has no subject")
	}
	return sub, nil
}

// Middleware resolves the user id from a Bearer token, falling back to the
// X-User-ID header for unauthenticated local development, and stores it in
// locals. Requests without any identity are rejected.
func (v *Verifier) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			userID, err := v.UserID(token)
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid session token"})
			}
			c.Locals(localsUserID, userID)
			return c.Next()
		}

		if userID := c.Get("X-User-ID"); userID != "" {
			c.Locals(localsUserID, userID)
			return c.Next()
		}

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}
}

// UserIDFrom reads the user id the middleware stored on the request.
func UserIDFrom(c *fiber.Ctx) (string, error) {
	userID, _ := c.Locals(localsUserID).(string)
	if userID == "" {
		return "", ErrNoUser
	}
	return userID, nil
}
