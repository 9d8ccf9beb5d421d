// internals/features/leads/route/lead_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edcrm_backend/internals/constants"
	leadController "edcrm_backend/internals/features/leads/controller"
	"edcrm_backend/internals/middlewares/auth"
)

func LeadRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := leadController.NewLeadController(db)
	grp := api.Group("/leads", auth.RequirePolicy(constants.PolicyAdminOrManager))
	grp.Get("/", ctrl.List)
	grp.Get("/stats", ctrl.Stats)
	grp.Get("/:id", ctrl.Detail)
	grp.Post("/", ctrl.Create)
	grp.Patch("/:id", ctrl.Update)
	grp.Patch("/:id/update-status", ctrl.UpdateStatus)
	grp.Delete("/:id", ctrl.Delete)
}
