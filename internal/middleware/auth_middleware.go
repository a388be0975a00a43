package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sefazor/qrtrack-backend/internal/models"
	jwtPkg "github.com/sefazor/qrtrack-backend/pkg/jwt"
)

// TokenCookieName is the cookie carrying the session token in cookie mode.
const TokenCookieName = "qr_token"

// TokenStrategy abstracts how the session token travels between client and
// server. Two implementations exist: an HTTP-only cookie and an Authorization
// bearer header.
type TokenStrategy interface {
	// Extract pulls the token from the request, if present.
	Extract(c *fiber.Ctx) (string, bool)
	// Issue delivers a fresh token to the client.
	Issue(c *fiber.Ctx, token string)
	// Clear invalidates the client-held credential on logout.
	Clear(c *fiber.Ctx)
	// ExposeToken reports whether the token should also appear in JSON bodies.
	ExposeToken() bool
}

// CookieStrategy stores the token in an HTTP-only cookie.
type CookieStrategy struct {
	Secure   bool
	SameSite string
	TTL      time.Duration
}

func (s *CookieStrategy) Extract(c *fiber.Ctx) (string, bool) {
	token := c.Cookies(TokenCookieName)
	return token, token != ""
}

func (s *CookieStrategy) Issue(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   s.Secure,
		SameSite: s.SameSite,
		Expires:  time.Now().Add(s.TTL),
	})
}

func (s *CookieStrategy) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		HTTPOnly: true,
		Secure:   s.Secure,
		SameSite: s.SameSite,
		Expires:  time.Now().Add(-time.Hour),
	})
}

func (s *CookieStrategy) ExposeToken() bool { return false }

// BearerStrategy reads the token from the Authorization header; issuing and
// clearing are client concerns in this mode.
type BearerStrategy struct{}

func (s *BearerStrategy) Extract(c *fiber.Ctx) (string, bool) {
	header := c.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

func (s *BearerStrategy) Issue(c *fiber.Ctx, token string) {}

func (s *BearerStrategy) Clear(c *fiber.Ctx) {}

func (s *BearerStrategy) ExposeToken() bool { return true }

// AuthMiddleware validates the session token and stores the caller's identity
// in request locals.
func AuthMiddleware(jwtManager *jwtPkg.Manager, strategy TokenStrategy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := strategy.Extract(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authentication required"))
		}

		claims, err := jwtManager.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid token"))
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid token"))
		}
		username, _ := claims["username"].(string)

		c.Locals("userID", userID)
		c.Locals("username", username)

		return c.Next()
	}
}
