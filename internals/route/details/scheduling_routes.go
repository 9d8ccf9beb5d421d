// internals/route/details/scheduling_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schedulingRoute "edcrm_backend/internals/features/scheduling/route"
)

func SchedulingRoutes(api fiber.Router, db *gorm.DB) {
	schedulingRoute.SchedulingRoutes(api, db)
}
