// internals/route/details/academic_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "edcrm_backend/internals/features/academics/attendance/route"
	directionRoute "edcrm_backend/internals/features/academics/direction/route"
	groupRoute "edcrm_backend/internals/features/academics/group/route"
)

func AcademicRoutes(api fiber.Router, db *gorm.DB) {
	directionRoute.DirectionRoutes(api, db)
	groupRoute.GroupRoutes(api, db)
	attendanceRoute.AttendanceRoutes(api, db)
}
