// internals/features/academics/group/controller/group_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"edcrm_backend/internals/constants"
	groupDTO "edcrm_backend/internals/features/academics/group/dto"
	groupModel "edcrm_backend/internals/features/academics/group/model"
	groupService "edcrm_backend/internals/features/academics/group/service"
	userModel "edcrm_backend/internals/features/users/user/model"
	helper "edcrm_backend/internals/helpers"
)

type GroupController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db, Validate: validator.New()}
}

var groupSortColumns = map[string]string{
	"created_at":    "group_created_at",
	"name":          "group_name",
	"planned_start": "group_planned_start",
}

// GET /groups?direction_id=&teacher_id=&is_active=&search=
func (ctrl *GroupController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&groupModel.GroupModel{})
	if v := c.Query("direction_id"); v != "" {
		q = q.Where("group_direction_id = ?", v)
	}
	if v := c.Query("teacher_id"); v != "" {
		q = q.Where("group_teacher_id = ?", v)
	}
	if v := c.Query("is_active"); v != "" {
		q = q.Where("group_is_active = ?", v == "true")
	}
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("lower(group_name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count groups")
	}
	var groups []groupModel.GroupModel
	if err := q.Order(p.SafeOrderClause(groupSortColumns, "created_at")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&groups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load groups")
	}

	now := time.Now()
	out := make([]groupDTO.GroupResponse, 0, len(groups))
	for i := range groups {
		resp, err := ctrl.toResponse(&groups[i], now)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load group members")
		}
		out = append(out, resp)
	}
	return helper.JsonList(c, "groups", out, helper.BuildPagination(total, p))
}

// GET /groups/:id (months and lessons preloaded)
func (ctrl *GroupController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid group id")
	}
	var group groupModel.GroupModel
	if err := ctrl.DB.
		Preload("Months", func(db *gorm.DB) *gorm.DB { return db.Order("month_number ASC") }).
		Preload("Months.Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("lesson_order ASC") }).
		First(&group, "group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load group")
	}
	resp, err := ctrl.toResponse(&group, time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load group members")
	}
	return helper.JsonOK(c, "group", resp)
}

// POST /groups
// The auto creation type materializes the month/lesson plan and the
// tracking rows in the same transaction.
func (ctrl *GroupController) Create(c *fiber.Ctx) error {
	var req groupDTO.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.TeacherID != nil {
		if err := ctrl.ensureRole(*req.TeacherID, constants.RoleTeacher); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id must reference an active teacher")
		}
	}

	group := req.ToModel()
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&group).Error; err != nil {
			return err
		}
		for _, studentID := range req.StudentIDs {
			if err := ctrl.addMember(tx, group.GroupID, studentID); err != nil {
				return err
			}
		}
		if group.GroupCreationType == groupModel.GroupCreationAuto {
			if err := groupService.ProvisionPlan(tx, &group); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errRoleMismatch) {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_ids must reference active students")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create group")
	}
	resp, _ := ctrl.toResponse(&group, time.Now())
	return helper.JsonCreated(c, "group created", resp)
}

// PATCH /groups/:id
// When sync_students is set, membership is reconciled against the given
// list: new members get their tracking rows backfilled, removed members
// keep their history.
func (ctrl *GroupController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid group id")
	}
	var req groupDTO.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var group groupModel.GroupModel
	if err := ctrl.DB.First(&group, "group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load group")
	}
	if req.TeacherID != nil {
		if err := ctrl.ensureRole(*req.TeacherID, constants.RoleTeacher); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id must reference an active teacher")
		}
	}

	applyGroupUpdate(&group, &req)
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&group).Error; err != nil {
			return err
		}
		if req.SyncStudents {
			return ctrl.syncMembers(tx, group.GroupID, req.StudentIDs)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errRoleMismatch) {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_ids must reference active students")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update group")
	}
	resp, _ := ctrl.toResponse(&group, time.Now())
	return helper.JsonUpdated(c, "group updated", resp)
}

// POST /groups/:id/students/:student_id
func (ctrl *GroupController) AddStudent(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid group id")
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return ctrl.addMember(tx, groupID, studentID)
	})
	if err != nil {
		if errors.Is(err, errRoleMismatch) {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id must reference an active student")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to add student")
	}
	return helper.JsonUpdated(c, "student added to group", fiber.Map{
		"group_id":   groupID,
		"student_id": studentID,
	})
}

// DELETE /groups/:id/students/:student_id (tracking rows stay)
func (ctrl *GroupController) RemoveStudent(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid group id")
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}
	res := ctrl.DB.
		Where("group_student_group_id = ? AND group_student_student_id = ?", groupID, studentID).
		Delete(&groupModel.GroupStudentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to remove student")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "student is not a member of this group")
	}
	return helper.JsonDeleted(c, "student removed from group", fiber.Map{
		"group_id":   groupID,
		"student_id": studentID,
	})
}

// DELETE /groups/:id (soft delete)
func (ctrl *GroupController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid group id")
	}
	res := ctrl.DB.Delete(&groupModel.GroupModel{}, "group_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete group")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "group not found")
	}
	return helper.JsonDeleted(c, "group deleted", fiber.Map{"group_id": id})
}

/* ===== internals ===== */

var errRoleMismatch = errors.New("user does not have the required role")

func (ctrl *GroupController) ensureRole(userID uuid.UUID, role constants.Role) error {
	var cnt int64
	err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_id = ? AND user_role = ? AND user_is_active = ?", userID, role, true).
		Count(&cnt).Error
	if err != nil {
		return err
	}
	if cnt == 0 {
		return errRoleMismatch
	}
	return nil
}

func (ctrl *GroupController) addMember(tx *gorm.DB, groupID, studentID uuid.UUID) error {
	var cnt int64
	if err := tx.Model(&userModel.UserModel{}).
		Where("user_id = ? AND user_role = ? AND user_is_active = ?", studentID, constants.RoleStudent, true).
		Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		return errRoleMismatch
	}
	member := groupModel.GroupStudentModel{
		GroupStudentGroupID:   groupID,
		GroupStudentStudentID: studentID,
	}
	if err := tx.Where("group_student_group_id = ? AND group_student_student_id = ?", groupID, studentID).
		FirstOrCreate(&member).Error; err != nil {
		return err
	}
	return groupService.EnsureForStudent(tx, groupID, studentID)
}

func (ctrl *GroupController) syncMembers(tx *gorm.DB, groupID uuid.UUID, want []uuid.UUID) error {
	var current []uuid.UUID
	if err := tx.Model(&groupModel.GroupStudentModel{}).
		Where("group_student_group_id = ?", groupID).
		Pluck("group_student_student_id", &current).Error; err != nil {
		return err
	}
	wanted := make(map[uuid.UUID]struct{}, len(want))
	for _, id := range want {
		wanted[id] = struct{}{}
	}
	for _, id := range current {
		if _, keep := wanted[id]; !keep {
			if err := tx.Where("group_student_group_id = ? AND group_student_student_id = ?", groupID, id).
				Delete(&groupModel.GroupStudentModel{}).Error; err != nil {
				return err
			}
		}
	}
	have := make(map[uuid.UUID]struct{}, len(current))
	for _, id := range current {
		have[id] = struct{}{}
	}
	for _, id := range want {
		if _, ok := have[id]; !ok {
			if err := ctrl.addMember(tx, groupID, id); err != nil {
				return err
			}
		}
	}
	return nil
}

func applyGroupUpdate(g *groupModel.GroupModel, req *groupDTO.UpdateGroupRequest) {
	if req.Name != nil {
		g.GroupName = strings.TrimSpace(*req.Name)
	}
	if req.DirectionID != nil {
		g.GroupDirectionID = *req.DirectionID
	}
	if req.TeacherID != nil {
		g.GroupTeacherID = req.TeacherID
	}
	if req.AgeGroup != nil {
		g.GroupAgeGroup = req.AgeGroup
	}
	if req.Format != nil {
		g.GroupFormat = groupModel.GroupFormat(*req.Format)
	}
	if req.PlannedStart != nil {
		g.GroupPlannedStart = req.PlannedStart
	}
	if req.LessonsPerWeek != nil {
		g.GroupLessonsPerWeek = *req.LessonsPerWeek
	}
	if req.LessonDuration != nil {
		g.GroupLessonDuration = *req.LessonDuration
	}
	if req.ScheduleDays != nil {
		g.GroupScheduleDays = datatypes.NewJSONSlice(req.ScheduleDays)
	}
	if req.Comment != nil {
		g.GroupComment = req.Comment
	}
	if req.IsActive != nil {
		g.GroupIsActive = *req.IsActive
	}
}

func (ctrl *GroupController) toResponse(g *groupModel.GroupModel, now time.Time) (groupDTO.GroupResponse, error) {
	var studentIDs []uuid.UUID
	err := ctrl.DB.Model(&groupModel.GroupStudentModel{}).
		Where("group_student_group_id = ?", g.GroupID).
		Pluck("group_student_student_id", &studentIDs).Error
	if err != nil {
		return groupDTO.GroupResponse{}, err
	}
	return groupDTO.GroupResponse{
		GroupModel:    *g,
		CurrentMonth:  groupService.CurrentMonthNumber(g, now),
		CurrentCourse: groupService.CurrentCourseLabel(g, now),
		StudentIDs:    studentIDs,
		StudentCount:  len(studentIDs),
	}, nil
}
