// internals/features/finance/invoice/route/invoice_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edcrm_backend/internals/constants"
	invoiceController "edcrm_backend/internals/features/finance/invoice/controller"
	"edcrm_backend/internals/middlewares/auth"
)

func InvoiceRoutes(api fiber.Router, db *gorm.DB) {
	invCtrl := invoiceController.NewInvoiceController(db)
	payCtrl := invoiceController.NewPaymentController(db)

	invoices := api.Group("/invoices", auth.RequirePolicy(constants.PolicyAdminOrManager))
	invoices.Get("/", invCtrl.List)
	invoices.Get("/:id", invCtrl.Detail)
	invoices.Post("/", invCtrl.Create)
	invoices.Patch("/:id", invCtrl.Update)
	invoices.Delete("/:id", invCtrl.Delete)

	payments := api.Group("/payments", auth.RequirePolicy(constants.PolicyAdminOrManager))
	payments.Get("/", payCtrl.List)
	payments.Post("/", payCtrl.Create)
	payments.Patch("/:id", payCtrl.Update)
	payments.Delete("/:id", payCtrl.Delete)
}
