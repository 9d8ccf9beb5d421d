// internals/features/academics/direction/route/direction_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edcrm_backend/internals/constants"
	directionController "edcrm_backend/internals/features/academics/direction/controller"
	"edcrm_backend/internals/middlewares/auth"
)

func DirectionRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := directionController.NewDirectionController(db)
	grp := api.Group("/directions", auth.RequirePolicy(constants.PolicyAuthenticatedRead))
	grp.Get("/", ctrl.List)
	grp.Get("/:id", ctrl.Detail)
	grp.Post("/", ctrl.Create)
	grp.Patch("/:id", ctrl.Update)
	grp.Delete("/:id", ctrl.Delete)
}
