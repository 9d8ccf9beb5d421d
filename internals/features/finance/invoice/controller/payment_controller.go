// internals/features/finance/invoice/controller/payment_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	invoiceDTO "edcrm_backend/internals/features/finance/invoice/dto"
	invoiceModel "edcrm_backend/internals/features/finance/invoice/model"
	billing "edcrm_backend/internals/features/finance/invoice/service"
	helper "edcrm_backend/internals/helpers"
)

type PaymentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db, Validate: validator.New()}
}

// GET /payments?invoice_id=&from=&to=
func (ctrl *PaymentController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&invoiceModel.PaymentModel{})
	if v := c.Query("invoice_id"); v != "" {
		q = q.Where("payment_invoice_id = ?", v)
	}
	if d, err := helper.ParseDateQuery(c.Query("from")); err == nil && d != nil {
		q = q.Where("payment_date >= ?", *d)
	}
	if d, err := helper.ParseDateQuery(c.Query("to")); err == nil && d != nil {
		q = q.Where("payment_date <= ?", *d)
	}
	var rows []invoiceModel.PaymentModel
	if err := q.Order("payment_date DESC, payment_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load payments")
	}
	return helper.JsonList(c, "payments", rows, nil)
}

// POST /payments
// Either invoice_id or student_id is required. With only the student,
// the oldest open invoice by due date receives the payment.
func (ctrl *PaymentController) Create(c *fiber.Ctx) error {
	var req invoiceDTO.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.InvoiceID == nil && req.StudentID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invoice_id or student_id is required")
	}
	total := req.Cash.Add(req.Transfer).Add(req.Online)
	if total.LessThanOrEqual(decimal.Zero) {
		return helper.JsonError(c, fiber.StatusBadRequest, "payment total must be positive")
	}
	if req.Cash.LessThan(decimal.Zero) || req.Transfer.LessThan(decimal.Zero) || req.Online.LessThan(decimal.Zero) {
		return helper.JsonError(c, fiber.StatusBadRequest, "payment amounts cannot be negative")
	}

	date := time.Now()
	if req.Date != nil {
		date, _ = time.Parse(helper.DateLayout, *req.Date)
	}

	payment, err := billing.RecordPayment(ctrl.DB, billing.RecordPaymentInput{
		InvoiceID: req.InvoiceID,
		StudentID: req.StudentID,
		Cash:      req.Cash,
		Transfer:  req.Transfer,
		Online:    req.Online,
		Date:      date,
		Comment:   req.Comment,
	})
	if err != nil {
		if errors.Is(err, billing.ErrNoOpenInvoice) {
			return helper.JsonError(c, fiber.StatusBadRequest, "student has no open invoice")
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to record payment")
	}
	return helper.JsonCreated(c, "payment recorded", payment)
}

// PATCH /payments/:id
func (ctrl *PaymentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payment id")
	}
	var req invoiceDTO.UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var payment invoiceModel.PaymentModel
	if err := ctrl.DB.First(&payment, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "payment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load payment")
	}

	if req.Cash != nil {
		payment.PaymentCashAmount = *req.Cash
	}
	if req.Transfer != nil {
		payment.PaymentTransferAmount = *req.Transfer
	}
	if req.Online != nil {
		payment.PaymentOnlineAmount = *req.Online
	}
	if req.Date != nil {
		d, _ := time.Parse(helper.DateLayout, *req.Date)
		payment.PaymentDate = d
	}
	if req.Comment != nil {
		payment.PaymentComment = req.Comment
	}
	if payment.Total().LessThanOrEqual(decimal.Zero) {
		return helper.JsonError(c, fiber.StatusBadRequest, "payment total must be positive")
	}

	if err := billing.UpdatePayment(ctrl.DB, &payment); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update payment")
	}
	return helper.JsonUpdated(c, "payment updated", payment)
}

// DELETE /payments/:id
func (ctrl *PaymentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payment id")
	}
	if err := billing.DeletePayment(ctrl.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "payment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete payment")
	}
	return helper.JsonDeleted(c, "payment deleted", fiber.Map{"payment_id": id})
}
