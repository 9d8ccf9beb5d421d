// internals/features/scheduling/controller/schedule_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edcrm_backend/internals/constants"
	groupModel "edcrm_backend/internals/features/academics/group/model"
	scheduleDTO "edcrm_backend/internals/features/scheduling/dto"
	scheduleModel "edcrm_backend/internals/features/scheduling/model"
	scheduleService "edcrm_backend/internals/features/scheduling/service"
	userModel "edcrm_backend/internals/features/users/user/model"
	helper "edcrm_backend/internals/helpers"
)

type ScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db, Validate: validator.New()}
}

// GET /schedules?date=&teacher_id=&classroom_id=&group_id=
func (ctrl *ScheduleController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&scheduleModel.ScheduleModel{})
	if v := c.Query("date"); v != "" {
		d, err := helper.ParseDateQuery(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		q = q.Where("schedule_date = ?", *d)
	}
	if v := c.Query("teacher_id"); v != "" {
		q = q.Where("schedule_teacher_id = ?", v)
	}
	if v := c.Query("classroom_id"); v != "" {
		q = q.Where("schedule_classroom_id = ?", v)
	}
	if v := c.Query("group_id"); v != "" {
		q = q.Where("schedule_group_id = ?", v)
	}
	var rows []scheduleModel.ScheduleModel
	if err := q.Order("schedule_date ASC, schedule_start_time ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load schedules")
	}
	return helper.JsonList(c, "schedules", rows, nil)
}

// POST /schedules
func (ctrl *ScheduleController) Create(c *fiber.Ctx) error {
	var req scheduleDTO.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.EndTime <= req.StartTime {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_time must be after start_time")
	}
	if err := ctrl.ensureTeacher(req.TeacherID); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id must reference an active teacher")
	}

	date, _ := time.Parse(helper.DateLayout, req.Date)
	schedule := req.ToModel(date)
	if err := scheduleService.Book(ctrl.DB, &schedule); err != nil {
		return ctrl.conflictError(c, err)
	}
	return helper.JsonCreated(c, "schedule created", schedule)
}

// PATCH /schedules/:id
func (ctrl *ScheduleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid schedule id")
	}
	var req scheduleDTO.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var schedule scheduleModel.ScheduleModel
	if err := ctrl.DB.First(&schedule, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load schedule")
	}

	if req.ClassroomID != nil {
		schedule.ScheduleClassroomID = *req.ClassroomID
	}
	if req.TeacherID != nil {
		if err := ctrl.ensureTeacher(*req.TeacherID); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id must reference an active teacher")
		}
		schedule.ScheduleTeacherID = *req.TeacherID
	}
	if req.GroupID != nil {
		schedule.ScheduleGroupID = *req.GroupID
	}
	if req.Date != nil {
		d, _ := time.Parse(helper.DateLayout, *req.Date)
		schedule.ScheduleDate = d
	}
	if req.StartTime != nil {
		schedule.ScheduleStartTime = *req.StartTime
	}
	if req.EndTime != nil {
		schedule.ScheduleEndTime = *req.EndTime
	}
	if req.Note != nil {
		schedule.ScheduleNote = req.Note
	}
	if schedule.ScheduleEndTime <= schedule.ScheduleStartTime {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_time must be after start_time")
	}

	if err := scheduleService.Reschedule(ctrl.DB, &schedule); err != nil {
		return ctrl.conflictError(c, err)
	}
	return helper.JsonUpdated(c, "schedule updated", schedule)
}

// DELETE /schedules/:id
func (ctrl *ScheduleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid schedule id")
	}
	res := ctrl.DB.Delete(&scheduleModel.ScheduleModel{}, "schedule_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete schedule")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "schedule not found")
	}
	return helper.JsonDeleted(c, "schedule deleted", fiber.Map{"schedule_id": id})
}

// GET /daily-schedule?date= (defaults to today), grouped by classroom
func (ctrl *ScheduleController) DailySchedule(c *fiber.Ctx) error {
	day := time.Now()
	if v := c.Query("date"); v != "" {
		d, err := helper.ParseDateQuery(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		day = *d
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	var rows []scheduleModel.ScheduleModel
	if err := ctrl.DB.
		Where("schedule_date = ?", day).
		Order("schedule_start_time ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load daily schedule")
	}

	byRoom := map[uuid.UUID][]scheduleModel.ScheduleModel{}
	for _, s := range rows {
		byRoom[s.ScheduleClassroomID] = append(byRoom[s.ScheduleClassroomID], s)
	}
	type roomBlock struct {
		ClassroomID uuid.UUID                      `json:"classroom_id"`
		Schedules   []scheduleModel.ScheduleModel `json:"schedules"`
	}
	out := make([]roomBlock, 0, len(byRoom))
	for roomID, list := range byRoom {
		out = append(out, roomBlock{ClassroomID: roomID, Schedules: list})
	}
	return helper.JsonOK(c, "daily schedule", fiber.Map{
		"date":  day.Format(helper.DateLayout),
		"rooms": out,
	})
}

// GET /schedules/next-for-student: the soonest upcoming class across
// the student's groups.
func (ctrl *ScheduleController) NextForStudent(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	var groupIDs []uuid.UUID
	if err := ctrl.DB.Model(&groupModel.GroupStudentModel{}).
		Where("group_student_student_id = ?", studentID).
		Pluck("group_student_group_id", &groupIDs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load memberships")
	}
	if len(groupIDs) == 0 {
		return helper.JsonOK(c, "no upcoming classes", nil)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	nowHHMM := now.Format("15:04")

	var next scheduleModel.ScheduleModel
	err = ctrl.DB.
		Where("schedule_group_id IN ?", groupIDs).
		Where("schedule_date > ? OR (schedule_date = ? AND schedule_start_time >= ?)", today, today, nowHHMM).
		Order("schedule_date ASC, schedule_start_time ASC").
		First(&next).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonOK(c, "no upcoming classes", nil)
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load next class")
	}
	return helper.JsonOK(c, "next class", next)
}

func (ctrl *ScheduleController) ensureTeacher(teacherID uuid.UUID) error {
	var cnt int64
	err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_id = ? AND user_role = ? AND user_is_active = ?", teacherID, constants.RoleTeacher, true).
		Count(&cnt).Error
	if err != nil {
		return err
	}
	if cnt == 0 {
		return errors.New("not a teacher")
	}
	return nil
}

func (ctrl *ScheduleController) conflictError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scheduleService.ErrRoomConflict):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, scheduleService.ErrTeacherConflict):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to save schedule")
	}
}
