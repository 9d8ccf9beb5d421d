// internals/route/details/lead_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	leadRoute "edcrm_backend/internals/features/leads/route"
)

func LeadRoutes(api fiber.Router, db *gorm.DB) {
	leadRoute.LeadRoutes(api, db)
}
