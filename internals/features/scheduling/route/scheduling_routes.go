// internals/features/scheduling/route/scheduling_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edcrm_backend/internals/constants"
	scheduleController "edcrm_backend/internals/features/scheduling/controller"
	"edcrm_backend/internals/middlewares/auth"
)

func SchedulingRoutes(api fiber.Router, db *gorm.DB) {
	roomCtrl := scheduleController.NewClassroomController(db)
	schedCtrl := scheduleController.NewScheduleController(db)

	rooms := api.Group("/classrooms", auth.RequirePolicy(constants.PolicyAdminOrManager))
	rooms.Get("/", roomCtrl.List)
	rooms.Post("/", roomCtrl.Create)
	rooms.Patch("/:id", roomCtrl.Update)
	rooms.Delete("/:id", roomCtrl.Delete)

	schedules := api.Group("/schedules", auth.RequirePolicy(constants.PolicyAdminOrManager))
	schedules.Get("/next-for-student", auth.OnlyRoles(constants.RoleStudent, constants.RoleAdmin), schedCtrl.NextForStudent)
	schedules.Get("/", schedCtrl.List)
	schedules.Post("/", schedCtrl.Create)
	schedules.Patch("/:id", schedCtrl.Update)
	schedules.Delete("/:id", schedCtrl.Delete)

	api.Get("/daily-schedule",
		auth.RequirePolicy(constants.PolicyAuthenticatedRead), schedCtrl.DailySchedule)
}
