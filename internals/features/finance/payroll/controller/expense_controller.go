// internals/features/finance/payroll/controller/expense_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	payrollDTO "edcrm_backend/internals/features/finance/payroll/dto"
	payrollModel "edcrm_backend/internals/features/finance/payroll/model"
	helper "edcrm_backend/internals/helpers"
)

type ExpenseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db, Validate: validator.New()}
}

// GET /expenses?category=&teacher_id=&from=&to=
func (ctrl *ExpenseController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&payrollModel.ExpenseModel{})
	if v := c.Query("category"); v != "" {
		if !payrollModel.ValidExpenseCategory(v) {
			return helper.JsonError(c, fiber.StatusBadRequest, "unknown expense category")
		}
		q = q.Where("expense_category = ?", v)
	}
	if v := c.Query("teacher_id"); v != "" {
		q = q.Where("expense_teacher_id = ?", v)
	}
	if d, err := helper.ParseDateQuery(c.Query("from")); err == nil && d != nil {
		q = q.Where("expense_date >= ?", *d)
	}
	if d, err := helper.ParseDateQuery(c.Query("to")); err == nil && d != nil {
		q = q.Where("expense_date <= ?", *d)
	}
	var rows []payrollModel.ExpenseModel
	if err := q.Order("expense_date DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load expenses")
	}
	return helper.JsonList(c, "expenses", rows, nil)
}

// POST /expenses
func (ctrl *ExpenseController) Create(c *fiber.Ctx) error {
	var req payrollDTO.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return helper.JsonError(c, fiber.StatusBadRequest, "amount must be positive")
	}
	date, _ := time.Parse(helper.DateLayout, req.Date)
	expense := payrollModel.ExpenseModel{
		ExpenseCategory:    payrollModel.ExpenseCategory(req.Category),
		ExpenseDescription: req.Description,
		ExpenseAmount:      req.Amount,
		ExpenseDate:        date,
		ExpenseTeacherID:   req.TeacherID,
		ExpenseComment:     req.Comment,
	}
	if err := ctrl.DB.Create(&expense).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create expense")
	}
	return helper.JsonCreated(c, "expense created", expense)
}

// PATCH /expenses/:id
func (ctrl *ExpenseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid expense id")
	}
	var req payrollDTO.UpdateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	var expense payrollModel.ExpenseModel
	if err := ctrl.DB.First(&expense, "expense_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "expense not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load expense")
	}
	if req.Category != nil {
		expense.ExpenseCategory = payrollModel.ExpenseCategory(*req.Category)
	}
	if req.Description != nil {
		expense.ExpenseDescription = *req.Description
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return helper.JsonError(c, fiber.StatusBadRequest, "amount must be positive")
		}
		expense.ExpenseAmount = *req.Amount
	}
	if req.Date != nil {
		d, _ := time.Parse(helper.DateLayout, *req.Date)
		expense.ExpenseDate = d
	}
	if req.TeacherID != nil {
		expense.ExpenseTeacherID = req.TeacherID
	}
	if req.Comment != nil {
		expense.ExpenseComment = req.Comment
	}
	if err := ctrl.DB.Save(&expense).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update expense")
	}
	return helper.JsonUpdated(c, "expense updated", expense)
}

// DELETE /expenses/:id
func (ctrl *ExpenseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid expense id")
	}
	res := ctrl.DB.Delete(&payrollModel.ExpenseModel{}, "expense_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete expense")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "expense not found")
	}
	return helper.JsonDeleted(c, "expense deleted", fiber.Map{"expense_id": id})
}
