// file: internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"edcrm_backend/internals/configs"
)

// AuthMiddleware validates the access token and stores the identity
// claims in locals. Deactivated accounts are rejected even with a
// still-valid token.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized - missing token",
			})
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "unexpected signing method")
			}
			return []byte(configs.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			log.Printf("[WARN] invalid token: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized - invalid token",
			})
		}

		userID, _ := claims["id"].(string)
		role, _ := claims["role"].(string)
		userName, _ := claims["user_name"].(string)
		if userID == "" || role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized - incomplete token claims",
			})
		}

		if err := ensureUserActive(db, userID); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized - account deactivated",
			})
		}

		c.Locals("user_id", userID)
		c.Locals("user_role", role)
		c.Locals("user_name", userName)
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	// cookie fallback for browser clients
	return c.Cookies("access_token")
}

func ensureUserActive(db *gorm.DB, userID string) error {
	var active bool
	err := db.Raw(`SELECT user_is_active FROM users WHERE user_id = ?`, userID).Scan(&active).Error
	if err != nil {
		return err
	}
	if !active {
		return fiber.NewError(fiber.StatusUnauthorized, "user inactive")
	}
	return nil
}
