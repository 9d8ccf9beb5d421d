// internals/features/finance/invoice/controller/invoice_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"edcrm_backend/internals/constants"
	invoiceDTO "edcrm_backend/internals/features/finance/invoice/dto"
	invoiceModel "edcrm_backend/internals/features/finance/invoice/model"
	billing "edcrm_backend/internals/features/finance/invoice/service"
	userModel "edcrm_backend/internals/features/users/user/model"
	helper "edcrm_backend/internals/helpers"
)

type InvoiceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db, Validate: validator.New()}
}

var invoiceSortColumns = map[string]string{
	"created_at": "invoice_created_at",
	"due_date":   "invoice_due_date",
	"amount":     "invoice_amount",
	"status":     "invoice_status",
}

// GET /invoices?student_id=&status=&due_before=&due_after=
func (ctrl *InvoiceController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "due_date", "asc", helper.DefaultOpts)

	q := ctrl.DB.Model(&invoiceModel.InvoiceModel{})
	if v := c.Query("student_id"); v != "" {
		q = q.Where("invoice_student_id = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("invoice_status = ?", v)
	}
	if d, err := helper.ParseDateQuery(c.Query("due_before")); err == nil && d != nil {
		q = q.Where("invoice_due_date <= ?", *d)
	}
	if d, err := helper.ParseDateQuery(c.Query("due_after")); err == nil && d != nil {
		q = q.Where("invoice_due_date >= ?", *d)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count invoices")
	}
	var invoices []invoiceModel.InvoiceModel
	if err := q.Order(p.SafeOrderClause(invoiceSortColumns, "due_date")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&invoices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load invoices")
	}

	out := make([]invoiceDTO.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		paid, err := billing.PaidAmount(ctrl.DB, invoices[i].InvoiceID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to sum payments")
		}
		out = append(out, invoiceDTO.BuildInvoiceResponse(&invoices[i], paid))
	}
	return helper.JsonList(c, "invoices", out, helper.BuildPagination(total, p))
}

// GET /invoices/:id (payments preloaded)
func (ctrl *InvoiceController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid invoice id")
	}
	var invoice invoiceModel.InvoiceModel
	if err := ctrl.DB.Preload("Payments").First(&invoice, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load invoice")
	}
	paid, err := billing.PaidAmount(ctrl.DB, invoice.InvoiceID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to sum payments")
	}
	return helper.JsonOK(c, "invoice", invoiceDTO.BuildInvoiceResponse(&invoice, paid))
}

// POST /invoices
func (ctrl *InvoiceController) Create(c *fiber.Ctx) error {
	var req invoiceDTO.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return helper.JsonError(c, fiber.StatusBadRequest, "amount must be positive")
	}
	if req.Discount.LessThan(decimal.Zero) || req.Discount.GreaterThan(req.Amount) {
		return helper.JsonError(c, fiber.StatusBadRequest, "discount must be between 0 and the amount")
	}

	var cnt int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_id = ? AND user_role = ?", req.StudentID, constants.RoleStudent).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check student")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id must reference a student")
	}

	dueDate, _ := time.Parse(helper.DateLayout, req.DueDate)
	invoice := req.ToModel(dueDate)
	if err := ctrl.DB.Create(&invoice).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create invoice")
	}
	return helper.JsonCreated(c, "invoice created", invoiceDTO.BuildInvoiceResponse(&invoice, decimal.Zero))
}

// PATCH /invoices/:id: amount/discount changes re-derive the status
func (ctrl *InvoiceController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid invoice id")
	}
	var req invoiceDTO.UpdateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var invoice invoiceModel.InvoiceModel
	if err := ctrl.DB.First(&invoice, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load invoice")
	}

	if req.MonthID != nil {
		invoice.InvoiceMonthID = req.MonthID
	}
	if req.Amount != nil {
		invoice.InvoiceAmount = *req.Amount
	}
	if req.Discount != nil {
		invoice.InvoiceDiscount = *req.Discount
	}
	if req.DueDate != nil {
		d, _ := time.Parse(helper.DateLayout, *req.DueDate)
		invoice.InvoiceDueDate = d
	}
	if req.Comment != nil {
		invoice.InvoiceComment = req.Comment
	}
	if invoice.InvoiceAmount.LessThanOrEqual(decimal.Zero) {
		return helper.JsonError(c, fiber.StatusBadRequest, "amount must be positive")
	}
	if invoice.InvoiceDiscount.LessThan(decimal.Zero) || invoice.InvoiceDiscount.GreaterThan(invoice.InvoiceAmount) {
		return helper.JsonError(c, fiber.StatusBadRequest, "discount must be between 0 and the amount")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&invoice).Error; err != nil {
			return err
		}
		return billing.Recompute(tx, invoice.InvoiceID)
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update invoice")
	}
	paid, _ := billing.PaidAmount(ctrl.DB, invoice.InvoiceID)
	ctrl.DB.First(&invoice, "invoice_id = ?", invoice.InvoiceID)
	return helper.JsonUpdated(c, "invoice updated", invoiceDTO.BuildInvoiceResponse(&invoice, paid))
}

// DELETE /invoices/:id (soft delete, payments go with it)
func (ctrl *InvoiceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid invoice id")
	}
	if err := billing.DeleteInvoice(ctrl.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete invoice")
	}
	return helper.JsonDeleted(c, "invoice deleted", fiber.Map{"invoice_id": id})
}
