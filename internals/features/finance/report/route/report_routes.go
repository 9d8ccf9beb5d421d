// internals/features/finance/report/route/report_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edcrm_backend/internals/constants"
	reportController "edcrm_backend/internals/features/finance/report/controller"
	"edcrm_backend/internals/middlewares/auth"
)

func ReportRoutes(api fiber.Router, db *gorm.DB) {
	reportCtrl := reportController.NewReportController(db)
	analyticsCtrl := reportController.NewAnalyticsController(db)
	discountCtrl := reportController.NewDiscountController(db)

	managerRead := auth.RequirePolicy(constants.PolicyAdminOrManager)

	reports := api.Group("/reports", managerRead)
	reports.Get("/", reportCtrl.List)
	reports.Post("/send", reportCtrl.SendReports)
	reports.Get("/monthly-income-pdf", reportCtrl.MonthlyIncomePDF)
	reports.Get("/teacher-workload-pdf", reportCtrl.TeacherWorkloadPDF)
	reports.Get("/popular-courses-pdf", reportCtrl.PopularCoursesPDF)
	reports.Get("/expenses-pdf", reportCtrl.ExpensesPDF)
	reports.Get("/teacher-payments-pdf", reportCtrl.TeacherPaymentsPDF)
	reports.Get("/financial-reports-pdf", reportCtrl.FinancialReportsPDF)

	api.Post("/generate-report", managerRead, reportCtrl.Generate)

	analytics := api.Group("/analytics", managerRead)
	analytics.Get("/payments-summary", analyticsCtrl.PaymentsSummary)
	analytics.Get("/attendance", analyticsCtrl.Attendance)
	analytics.Get("/teacher-workload", analyticsCtrl.TeacherWorkload)
	analytics.Get("/popular-directions", analyticsCtrl.PopularDirections)
	analytics.Get("/monthly-income", analyticsCtrl.MonthlyIncome)
	analytics.Get("/dashboard", analyticsCtrl.Dashboard)
	analytics.Get("/active-students", analyticsCtrl.ActiveStudents)

	discounts := api.Group("/discount-regulations", auth.RequirePolicy(constants.PolicyAuthenticatedRead))
	discounts.Get("/", discountCtrl.List)
	discounts.Post("/", discountCtrl.Create)
	discounts.Patch("/:id", discountCtrl.Update)
	discounts.Delete("/:id", discountCtrl.Delete)
}
