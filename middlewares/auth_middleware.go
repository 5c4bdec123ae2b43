package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/Goriishankar/Dolchem-backend/responses"
)

func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

func parseClaims(tokenString, secret string) (jwt.MapClaims, bool) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}

// Protect guards customer routes. On success the user id from the
// token lands in c.Locals("userId").
func Protect(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return responses.Error(c, fiber.StatusUnauthorized, "No auth token, access denied")
		}

		claims, ok := parseClaims(tokenString, secret)
		if !ok {
			return responses.Error(c, fiber.StatusUnauthorized, "Token verification failed, access denied")
		}

		userId, ok := claims["userId"].(string)
		if !ok || userId == "" {
			return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
		}

		c.Locals("userId", userId)
		return c.Next()
	}
}

// ProtectAdmin guards dashboard routes. Admin tokens bind the admin id
// and email.
func ProtectAdmin(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return responses.Error(c, fiber.StatusUnauthorized, "No auth token, access denied")
		}

		claims, ok := parseClaims(tokenString, secret)
		if !ok {
			return responses.Error(c, fiber.StatusUnauthorized, "Token verification failed, access denied")
		}

		adminId, _ := claims["id"].(string)
		email, _ := claims["email"].(string)
		if adminId == "" || email == "" {
			return responses.Error(c, fiber.StatusUnauthorized, "Admin credentials not found in token")
		}

		c.Locals("adminId", adminId)
		c.Locals("adminEmail", email)
		return c.Next()
	}
}
