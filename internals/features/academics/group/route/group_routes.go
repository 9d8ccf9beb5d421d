// internals/features/academics/group/route/group_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edcrm_backend/internals/constants"
	groupController "edcrm_backend/internals/features/academics/group/controller"
	"edcrm_backend/internals/middlewares/auth"
)

func GroupRoutes(api fiber.Router, db *gorm.DB) {
	groupCtrl := groupController.NewGroupController(db)
	monthCtrl := groupController.NewMonthController(db)
	lessonCtrl := groupController.NewLessonController(db)

	groups := api.Group("/groups", auth.RequirePolicy(constants.PolicyAdminOrManager))
	groups.Get("/", groupCtrl.List)
	groups.Get("/:id", groupCtrl.Detail)
	groups.Post("/", groupCtrl.Create)
	groups.Patch("/:id", groupCtrl.Update)
	groups.Delete("/:id", groupCtrl.Delete)
	groups.Post("/:id/students/:student_id", groupCtrl.AddStudent)
	groups.Delete("/:id/students/:student_id", groupCtrl.RemoveStudent)

	months := api.Group("/months", auth.RequirePolicy(constants.PolicyAdminOrTeacher))
	months.Get("/", monthCtrl.List)
	months.Get("/:id", monthCtrl.Detail)
	months.Post("/", monthCtrl.Create)
	months.Patch("/:id", monthCtrl.Update)
	months.Delete("/:id", monthCtrl.Delete)

	lessons := api.Group("/lessons", auth.RequirePolicy(constants.PolicyAdminOrTeacher))
	lessons.Get("/", lessonCtrl.List)
	lessons.Get("/:id", lessonCtrl.Detail)
	lessons.Post("/", lessonCtrl.Create)
	lessons.Patch("/:id", lessonCtrl.Update)
	lessons.Delete("/:id", lessonCtrl.Delete)
}
