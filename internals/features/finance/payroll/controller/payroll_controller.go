// internals/features/finance/payroll/controller/payroll_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"edcrm_backend/internals/constants"
	payrollDTO "edcrm_backend/internals/features/finance/payroll/dto"
	payrollModel "edcrm_backend/internals/features/finance/payroll/model"
	payrollService "edcrm_backend/internals/features/finance/payroll/service"
	userModel "edcrm_backend/internals/features/users/user/model"
	helper "edcrm_backend/internals/helpers"
)

type PayrollController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPayrollController(db *gorm.DB) *PayrollController {
	return &PayrollController{DB: db, Validate: validator.New()}
}

// GET /teachers/:id/salary
func (ctrl *PayrollController) GetSalary(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid teacher id")
	}
	var profile payrollModel.TeacherProfileModel
	if err := ctrl.DB.Where("teacher_profile_teacher_id = ?", teacherID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "teacher has no salary profile")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load salary profile")
	}
	return helper.JsonOK(c, "salary profile", profile)
}

// PUT /teachers/:id/salary: creates or replaces the profile
func (ctrl *PayrollController) UpsertSalary(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid teacher id")
	}
	var req payrollDTO.UpsertSalaryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.PaymentAmount.LessThanOrEqual(decimal.Zero) {
		return helper.JsonError(c, fiber.StatusBadRequest, "payment_amount must be positive")
	}

	var cnt int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_id = ? AND user_role = ?", teacherID, constants.RoleTeacher).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check teacher")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id must reference a teacher")
	}

	var profile payrollModel.TeacherProfileModel
	err = ctrl.DB.Where("teacher_profile_teacher_id = ?", teacherID).First(&profile).Error
	created := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !created {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load salary profile")
	}

	profile.TeacherProfileTeacherID = teacherID
	profile.TeacherProfileType = payrollModel.PaymentType(req.PaymentType)
	profile.TeacherProfileAmount = req.PaymentAmount
	profile.TeacherProfilePeriod = payrollModel.PaymentPeriod(req.PaymentPeriod)
	if err := ctrl.DB.Save(&profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to save salary profile")
	}
	if created {
		return helper.JsonCreated(c, "salary profile created", profile)
	}
	return helper.JsonUpdated(c, "salary profile updated", profile)
}

// POST /calculate-teacher-payments {month, year}
func (ctrl *PayrollController) Calculate(c *fiber.Ctx) error {
	var req payrollDTO.CalculatePaymentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	results, err := payrollService.CalculateTeacherPayments(ctrl.DB, req.Month, req.Year)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to calculate teacher payments")
	}
	return helper.JsonOK(c, "teacher payments calculated", results)
}

// GET /teacher-payments?teacher_id=&is_paid=
func (ctrl *PayrollController) ListPayments(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&payrollModel.TeacherPaymentModel{})
	if v := c.Query("teacher_id"); v != "" {
		q = q.Where("teacher_payment_teacher_id = ?", v)
	}
	if v := c.Query("is_paid"); v != "" {
		q = q.Where("teacher_payment_is_paid = ?", v == "true")
	}
	var rows []payrollModel.TeacherPaymentModel
	if err := q.Order("teacher_payment_date DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load teacher payments")
	}
	out := make([]payrollDTO.TeacherPaymentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, payrollDTO.BuildTeacherPaymentResponse(&rows[i]))
	}
	return helper.JsonList(c, "teacher payments", out, nil)
}

// PATCH /teacher-payments/:id: bonus / paid amount / paid flag
func (ctrl *PayrollController) UpdatePayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid teacher payment id")
	}
	var req payrollDTO.UpdateTeacherPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	var row payrollModel.TeacherPaymentModel
	if err := ctrl.DB.First(&row, "teacher_payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "teacher payment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load teacher payment")
	}
	if req.Bonus != nil {
		row.TeacherPaymentBonus = *req.Bonus
	}
	if req.PaidAmount != nil {
		row.TeacherPaymentPaidAmount = *req.PaidAmount
	}
	if req.IsPaid != nil {
		row.TeacherPaymentIsPaid = *req.IsPaid
	}
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update teacher payment")
	}
	return helper.JsonUpdated(c, "teacher payment updated", payrollDTO.BuildTeacherPaymentResponse(&row))
}
