// file: internals/middlewares/auth/role_middleware.go
package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"edcrm_backend/internals/constants"
)

// RequirePolicy gates a route group with a role policy. Safe methods
// (GET/HEAD/OPTIONS) pass with read access, everything else needs full.
func RequirePolicy(policy constants.Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := c.Locals("user_role").(string)
		if !ok || raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized - missing role",
			})
		}
		role, ok := constants.ParseRole(raw)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": fmt.Sprintf("❌ Unknown role %q.", raw),
			})
		}
		if !constants.Allow(policy, role, constants.IsSafeMethod(c.Method())) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": fmt.Sprintf("❌ Role %q may not access this resource.", raw),
			})
		}
		return c.Next()
	}
}

// OnlyRoles is a shortcut for handlers that need an exact role match
// regardless of HTTP method.
func OnlyRoles(roles ...constants.Role) fiber.Handler {
	allowed := make(map[constants.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		raw, _ := c.Locals("user_role").(string)
		role, ok := constants.ParseRole(raw)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": fmt.Sprintf("❌ Unknown role %q.", raw),
			})
		}
		if _, ok := allowed[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": fmt.Sprintf("❌ Role %q may not access this resource.", raw),
			})
		}
		return c.Next()
	}
}
