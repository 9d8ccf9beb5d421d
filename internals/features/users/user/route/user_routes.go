// internals/features/users/user/route/user_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edcrm_backend/internals/constants"
	userController "edcrm_backend/internals/features/users/user/controller"
	"edcrm_backend/internals/middlewares"
	"edcrm_backend/internals/middlewares/auth"
)

// AuthRoutes are public (login is rate-limited).
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewAuthController(db)
	grp := api.Group("/auth")
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	grp.Post("/refresh", ctrl.Refresh)
}

// UserRoutes require a token; account management is admin/manager only.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)
	profileCtrl := userController.NewProfileController(db)

	users := api.Group("/users", auth.RequirePolicy(constants.PolicyAdminOrManager))
	users.Get("/", userCtrl.List)
	users.Get("/:id", userCtrl.Detail)
	users.Post("/", userCtrl.Create)
	users.Patch("/:id", userCtrl.Update)
	users.Delete("/:id", userCtrl.Deactivate)

	profile := api.Group("/profile")
	profile.Get("/", profileCtrl.Get)
	profile.Patch("/", profileCtrl.Update)
	profile.Post("/change-password", profileCtrl.ChangePassword)
	profile.Post("/avatar", profileCtrl.UploadAvatar)
}
