// internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceRoute "edcrm_backend/internals/features/finance/invoice/route"
	payrollRoute "edcrm_backend/internals/features/finance/payroll/route"
	reportRoute "edcrm_backend/internals/features/finance/report/route"
)

func FinanceRoutes(api fiber.Router, db *gorm.DB) {
	invoiceRoute.InvoiceRoutes(api, db)
	payrollRoute.PayrollRoutes(api, db)
	reportRoute.ReportRoutes(api, db)
}
