// file: internals/helpers/token.go
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"edcrm_backend/internals/constants"
)

// GetUserIDFromLocals reads the user id the auth middleware stored.
func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "missing user id in token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "invalid user id in token")
	}
	return id, nil
}

// GetRoleFromLocals reads the role claim the auth middleware stored.
func GetRoleFromLocals(c *fiber.Ctx) (constants.Role, error) {
	raw, ok := c.Locals("user_role").(string)
	if !ok || raw == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "missing role in token")
	}
	role, ok := constants.ParseRole(raw)
	if !ok {
		return "", fiber.NewError(fiber.StatusUnauthorized, "unknown role in token")
	}
	return role, nil
}
