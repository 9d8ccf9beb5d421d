// internals/features/finance/report/controller/analytics_controller.go
package controller

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edcrm_backend/internals/constants"
	reportService "edcrm_backend/internals/features/finance/report/service"
	userModel "edcrm_backend/internals/features/users/user/model"
	helper "edcrm_backend/internals/helpers"
)

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

// analytics date window: ?from=&to=, defaulting to the current year
func (ctrl *AnalyticsController) window(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	end := now
	if d, err := helper.ParseDateQuery(c.Query("from")); err != nil {
		return start, end, err
	} else if d != nil {
		start = *d
	}
	if d, err := helper.ParseDateQuery(c.Query("to")); err != nil {
		return start, end, err
	} else if d != nil {
		end = helper.EndOfDay(*d)
	}
	return start, end, nil
}

// GET /analytics/payments-summary
func (ctrl *AnalyticsController) PaymentsSummary(c *fiber.Ctx) error {
	start, end, err := ctrl.window(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	summary, err := reportService.PaymentsSummaryFor(ctrl.DB, start, end)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to summarize payments")
	}
	return helper.JsonOK(c, "payments summary", summary)
}

// GET /analytics/attendance
func (ctrl *AnalyticsController) Attendance(c *fiber.Ctx) error {
	start, end, err := ctrl.window(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	stats, err := reportService.AttendanceStatsFor(ctrl.DB, start, end)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to compute attendance stats")
	}
	return helper.JsonOK(c, "attendance stats", stats)
}

// GET /analytics/teacher-workload
func (ctrl *AnalyticsController) TeacherWorkload(c *fiber.Ctx) error {
	start, end, err := ctrl.window(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	workload, err := reportService.TeacherWorkloadFor(ctrl.DB, start, end)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to compute teacher workload")
	}
	return helper.JsonOK(c, "teacher workload", workload)
}

// GET /analytics/popular-directions
func (ctrl *AnalyticsController) PopularDirections(c *fiber.Ctx) error {
	start, end, err := ctrl.window(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	ranking, err := reportService.PopularDirections(ctrl.DB, start, end)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to rank directions")
	}
	return helper.JsonOK(c, "popular directions", ranking)
}

// GET /analytics/monthly-income?year=
func (ctrl *AnalyticsController) MonthlyIncome(c *fiber.Ctx) error {
	year := time.Now().Year()
	if v := c.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 2000 || y > 2100 {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid year")
		}
		year = y
	}
	series, err := reportService.MonthlyIncomeSeries(ctrl.DB, year)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to build income series")
	}
	return helper.JsonOK(c, "monthly income", fiber.Map{
		"year":   year,
		"series": series,
	})
}

// GET /analytics/dashboard
func (ctrl *AnalyticsController) Dashboard(c *fiber.Ctx) error {
	stats, err := reportService.Dashboard(ctrl.DB, time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to build dashboard")
	}
	return helper.JsonOK(c, "dashboard", stats)
}

// GET /analytics/active-students
func (ctrl *AnalyticsController) ActiveStudents(c *fiber.Ctx) error {
	var active, inactive int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_role = ? AND user_is_active = ?", constants.RoleStudent, true).
		Count(&active).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count students")
	}
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_role = ? AND user_is_active = ?", constants.RoleStudent, false).
		Count(&inactive).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count students")
	}
	return helper.JsonOK(c, "active students", fiber.Map{
		"active":   active,
		"inactive": inactive,
		"total":    active + inactive,
	})
}
