// internals/features/finance/payroll/route/payroll_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edcrm_backend/internals/constants"
	payrollController "edcrm_backend/internals/features/finance/payroll/controller"
	"edcrm_backend/internals/middlewares/auth"
)

func PayrollRoutes(api fiber.Router, db *gorm.DB) {
	payCtrl := payrollController.NewPayrollController(db)
	expCtrl := payrollController.NewExpenseController(db)

	adminOnly := auth.RequirePolicy(constants.PolicyAdminOnly)

	api.Get("/teachers/:id/salary", adminOnly, payCtrl.GetSalary)
	api.Put("/teachers/:id/salary", adminOnly, payCtrl.UpsertSalary)
	api.Post("/calculate-teacher-payments", adminOnly, payCtrl.Calculate)

	payments := api.Group("/teacher-payments", adminOnly)
	payments.Get("/", payCtrl.ListPayments)
	payments.Patch("/:id", payCtrl.UpdatePayment)

	expenses := api.Group("/expenses", auth.RequirePolicy(constants.PolicyAdminOrManager))
	expenses.Get("/", expCtrl.List)
	expenses.Post("/", expCtrl.Create)
	expenses.Patch("/:id", expCtrl.Update)
	expenses.Delete("/:id", expCtrl.Delete)
}
