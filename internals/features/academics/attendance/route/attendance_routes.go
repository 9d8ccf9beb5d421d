// internals/features/academics/attendance/route/attendance_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edcrm_backend/internals/constants"
	attendanceController "edcrm_backend/internals/features/academics/attendance/controller"
	"edcrm_backend/internals/middlewares/auth"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	attCtrl := attendanceController.NewAttendanceController(db)
	hwCtrl := attendanceController.NewHomeworkController(db)

	att := api.Group("/attendances", auth.RequirePolicy(constants.PolicyAdminOrTeacher))
	att.Get("/", attCtrl.List)
	att.Post("/mark", attCtrl.Mark)

	api.Get("/groups/:id/grades",
		auth.RequirePolicy(constants.PolicyAuthenticatedRead), attCtrl.GroupGrades)

	hw := api.Group("/homeworks")
	hw.Get("/", auth.RequirePolicy(constants.PolicyAuthenticatedRead), hwCtrl.List)
	hw.Get("/:id", auth.RequirePolicy(constants.PolicyAuthenticatedRead), hwCtrl.Detail)
	hw.Patch("/:id/grade", auth.RequirePolicy(constants.PolicyAdminOrTeacher), hwCtrl.Grade)
	hw.Post("/submit", auth.OnlyRoles(constants.RoleStudent), hwCtrl.Submit)
}
