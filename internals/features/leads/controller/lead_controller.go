// internals/features/leads/controller/lead_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	leadDTO "edcrm_backend/internals/features/leads/dto"
	leadModel "edcrm_backend/internals/features/leads/model"
	helper "edcrm_backend/internals/helpers"
)

type LeadController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLeadController(db *gorm.DB) *LeadController {
	return &LeadController{DB: db, Validate: validator.New()}
}

var leadSortColumns = map[string]string{
	"created_at":   "lead_created_at",
	"name":         "lead_name",
	"status":       "lead_status",
	"next_contact": "lead_next_contact_date",
}

// GET /leads?status=&search=&from=&to=
// Search covers name, phone and course.
func (ctrl *LeadController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&leadModel.LeadModel{})
	if v := c.Query("status"); v != "" {
		if !leadModel.ValidLeadStatus(v) {
			return helper.JsonError(c, fiber.StatusBadRequest, "unknown lead status")
		}
		q = q.Where("lead_status = ?", v)
	}
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"lower(lead_name) LIKE ? OR lead_phone LIKE ? OR lower(lead_course) LIKE ?",
			like, "%"+s+"%", like,
		)
	}
	if d, err := helper.ParseDateQuery(c.Query("from")); err == nil && d != nil {
		q = q.Where("lead_created_at >= ?", *d)
	}
	if d, err := helper.ParseDateQuery(c.Query("to")); err == nil && d != nil {
		q = q.Where("lead_created_at <= ?", helper.EndOfDay(*d))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count leads")
	}
	var leads []leadModel.LeadModel
	if err := q.Order(p.SafeOrderClause(leadSortColumns, "created_at")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&leads).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load leads")
	}
	return helper.JsonList(c, "leads", leads, helper.BuildPagination(total, p))
}

// GET /leads/stats: funnel counts per stage plus the total
func (ctrl *LeadController) Stats(c *fiber.Ctx) error {
	stats := leadDTO.LeadStats{ByStatus: map[string]int64{}}
	for _, status := range leadModel.AllLeadStatuses {
		var cnt int64
		if err := ctrl.DB.Model(&leadModel.LeadModel{}).
			Where("lead_status = ?", status).
			Count(&cnt).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count leads")
		}
		stats.ByStatus[string(status)] = cnt
		stats.Total += cnt
	}
	return helper.JsonOK(c, "lead stats", stats)
}

// GET /leads/:id
func (ctrl *LeadController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid lead id")
	}
	var lead leadModel.LeadModel
	if err := ctrl.DB.First(&lead, "lead_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "lead not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load lead")
	}
	return helper.JsonOK(c, "lead", lead)
}

// POST /leads
func (ctrl *LeadController) Create(c *fiber.Ctx) error {
	var req leadDTO.CreateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	lead := req.ToModel()
	if err := ctrl.DB.Create(&lead).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create lead")
	}
	return helper.JsonCreated(c, "lead created", lead)
}

// PATCH /leads/:id
func (ctrl *LeadController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid lead id")
	}
	var req leadDTO.UpdateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	var lead leadModel.LeadModel
	if err := ctrl.DB.First(&lead, "lead_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "lead not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load lead")
	}
	applyLeadUpdate(&lead, &req)
	if err := ctrl.DB.Save(&lead).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update lead")
	}
	return helper.JsonUpdated(c, "lead updated", lead)
}

// PATCH /leads/:id/update-status
func (ctrl *LeadController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid lead id")
	}
	var req leadDTO.UpdateLeadStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	var lead leadModel.LeadModel
	if err := ctrl.DB.First(&lead, "lead_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "lead not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load lead")
	}
	lead.LeadStatus = leadModel.LeadStatus(req.Status)
	if err := ctrl.DB.Save(&lead).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update lead status")
	}
	return helper.JsonUpdated(c, "lead status updated", lead)
}

// DELETE /leads/:id (soft delete)
func (ctrl *LeadController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid lead id")
	}
	res := ctrl.DB.Delete(&leadModel.LeadModel{}, "lead_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete lead")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "lead not found")
	}
	return helper.JsonDeleted(c, "lead deleted", fiber.Map{"lead_id": id})
}

func applyLeadUpdate(l *leadModel.LeadModel, req *leadDTO.UpdateLeadRequest) {
	if req.Name != nil {
		l.LeadName = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		l.LeadPhone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		l.LeadEmail = req.Email
	}
	if req.Course != nil {
		l.LeadCourse = req.Course
	}
	if req.Status != nil {
		l.LeadStatus = leadModel.LeadStatus(*req.Status)
	}
	if req.Source != nil {
		l.LeadSource = req.Source
	}
	if req.Comment != nil {
		l.LeadComment = req.Comment
	}
	if req.NextContactDate != nil {
		l.LeadNextContactDate = req.NextContactDate
	}
}
