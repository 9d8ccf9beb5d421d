// internals/features/academics/group/service/provisioning_service.go
package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "edcrm_backend/internals/features/academics/attendance/model"
	groupModel "edcrm_backend/internals/features/academics/group/model"
)

/* =======================================================================
   Provisioning keeps one attendance row and one homework row per
   (lesson, student) pair. Three triggers call into here: group creation
   with the auto plan, membership changes, and lesson creation. All of
   them funnel through EnsurePair, which is a get-or-create and never
   resets a status a teacher already set.
======================================================================= */

// ProvisionPlan materializes the month/lesson plan for an auto-created
// group inside the caller's transaction.
func ProvisionPlan(tx *gorm.DB, group *groupModel.GroupModel) error {
	for m := 1; m <= group.GroupDurationMonths; m++ {
		month := groupModel.MonthModel{
			MonthGroupID: group.GroupID,
			MonthNumber:  m,
			MonthTitle:   fmt.Sprintf("Month %d", m),
		}
		if err := tx.Create(&month).Error; err != nil {
			return fmt.Errorf("create month %d: %w", m, err)
		}
		for l := 1; l <= group.GroupLessonsPerMonth; l++ {
			lesson := groupModel.LessonModel{
				LessonMonthID: month.MonthID,
				LessonOrder:   l,
				LessonTitle:   fmt.Sprintf("Lesson %d", l),
			}
			if err := tx.Create(&lesson).Error; err != nil {
				return fmt.Errorf("create lesson %d of month %d: %w", l, m, err)
			}
			if err := EnsureForLesson(tx, group.GroupID, lesson.LessonID); err != nil {
				return err
			}
		}
	}
	return nil
}

// EnsureForStudent backfills rows for every lesson of the group after a
// student joins.
func EnsureForStudent(tx *gorm.DB, groupID, studentID uuid.UUID) error {
	lessonIDs, err := groupLessonIDs(tx, groupID)
	if err != nil {
		return err
	}
	for _, lessonID := range lessonIDs {
		if err := EnsurePair(tx, lessonID, studentID); err != nil {
			return err
		}
	}
	return nil
}

// EnsureForLesson backfills rows for every current member after a lesson
// is added.
func EnsureForLesson(tx *gorm.DB, groupID, lessonID uuid.UUID) error {
	var studentIDs []uuid.UUID
	if err := tx.Model(&groupModel.GroupStudentModel{}).
		Where("group_student_group_id = ?", groupID).
		Pluck("group_student_student_id", &studentIDs).Error; err != nil {
		return fmt.Errorf("load group members: %w", err)
	}
	for _, studentID := range studentIDs {
		if err := EnsurePair(tx, lessonID, studentID); err != nil {
			return err
		}
	}
	return nil
}

// EnsurePair is the single get-or-create path for both tracking rows.
func EnsurePair(tx *gorm.DB, lessonID, studentID uuid.UUID) error {
	att := attendanceModel.AttendanceModel{
		AttendanceLessonID:  lessonID,
		AttendanceStudentID: studentID,
		AttendanceStatus:    attendanceModel.AttendanceAbsent,
	}
	if err := tx.Where("attendance_lesson_id = ? AND attendance_student_id = ?", lessonID, studentID).
		FirstOrCreate(&att).Error; err != nil {
		return fmt.Errorf("ensure attendance: %w", err)
	}

	hw := attendanceModel.HomeworkSubmissionModel{
		HomeworkLessonID:  lessonID,
		HomeworkStudentID: studentID,
		HomeworkStatus:    attendanceModel.HomeworkNotDone,
	}
	if err := tx.Where("homework_lesson_id = ? AND homework_student_id = ?", lessonID, studentID).
		FirstOrCreate(&hw).Error; err != nil {
		return fmt.Errorf("ensure homework: %w", err)
	}
	return nil
}

func groupLessonIDs(tx *gorm.DB, groupID uuid.UUID) ([]uuid.UUID, error) {
	var lessonIDs []uuid.UUID
	err := tx.Model(&groupModel.LessonModel{}).
		Joins("JOIN months ON months.month_id = lessons.lesson_month_id").
		Where("months.month_group_id = ?", groupID).
		Pluck("lessons.lesson_id", &lessonIDs).Error
	if err != nil {
		return nil, fmt.Errorf("load group lessons: %w", err)
	}
	return lessonIDs, nil
}

// GroupIDForLesson resolves the owning group of a lesson.
func GroupIDForLesson(tx *gorm.DB, lessonID uuid.UUID) (uuid.UUID, error) {
	var groupIDs []uuid.UUID
	err := tx.Model(&groupModel.MonthModel{}).
		Joins("JOIN lessons ON lessons.lesson_month_id = months.month_id").
		Where("lessons.lesson_id = ?", lessonID).
		Limit(1).
		Pluck("months.month_group_id", &groupIDs).Error
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolve lesson group: %w", err)
	}
	if len(groupIDs) == 0 {
		return uuid.Nil, gorm.ErrRecordNotFound
	}
	return groupIDs[0], nil
}
