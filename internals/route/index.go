// internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edcrm_backend/internals/middlewares/auth"
	"edcrm_backend/internals/route/details"
)

// SetupRoutes mounts the public auth endpoints and the protected API.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	details.PublicRoutes(api, db)

	protected := api.Group("", auth.AuthMiddleware(db))
	details.UserRoutes(protected, db)
	details.AcademicRoutes(protected, db)
	details.SchedulingRoutes(protected, db)
	details.FinanceRoutes(protected, db)
	details.LeadRoutes(protected, db)
}
