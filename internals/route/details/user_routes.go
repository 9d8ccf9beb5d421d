// internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "edcrm_backend/internals/features/users/user/route"
)

func PublicRoutes(api fiber.Router, db *gorm.DB) {
	userRoute.AuthRoutes(api, db)
}

func UserRoutes(api fiber.Router, db *gorm.DB) {
	userRoute.UserRoutes(api, db)
}
