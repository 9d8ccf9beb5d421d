// internals/features/academics/group/service/provisioning_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	attendanceModel "edcrm_backend/internals/features/academics/attendance/model"
	groupModel "edcrm_backend/internals/features/academics/group/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&groupModel.GroupModel{},
		&groupModel.GroupStudentModel{},
		&groupModel.MonthModel{},
		&groupModel.LessonModel{},
		&attendanceModel.AttendanceModel{},
		&attendanceModel.HomeworkSubmissionModel{},
	))
	return db
}

func createGroup(t *testing.T, db *gorm.DB, months, lessonsPerMonth int) *groupModel.GroupModel {
	t.Helper()
	g := groupModel.GroupModel{
		GroupName:            "Frontend A1",
		GroupDirectionID:     uuid.New(),
		GroupDurationMonths:  months,
		GroupLessonsPerMonth: lessonsPerMonth,
	}
	require.NoError(t, db.Create(&g).Error)
	return &g
}

func addMember(t *testing.T, db *gorm.DB, groupID, studentID uuid.UUID) {
	t.Helper()
	require.NoError(t, db.Create(&groupModel.GroupStudentModel{
		GroupStudentGroupID:   groupID,
		GroupStudentStudentID: studentID,
	}).Error)
}

func count(t *testing.T, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()
	var cnt int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&cnt).Error)
	return cnt
}

func TestProvisionPlanMaterializesMonthsAndLessons(t *testing.T) {
	db := openTestDB(t)
	g := createGroup(t, db, 2, 3)
	student := uuid.New()
	addMember(t, db, g.GroupID, student)

	require.NoError(t, ProvisionPlan(db, g))

	assert.EqualValues(t, 2, count(t, db, &groupModel.MonthModel{}, "month_group_id = ?", g.GroupID))

	lessonIDs, err := groupLessonIDs(db, g.GroupID)
	require.NoError(t, err)
	assert.Len(t, lessonIDs, 6)

	// one tracking pair per (lesson, member)
	assert.EqualValues(t, 6, count(t, db, &attendanceModel.AttendanceModel{}, "attendance_student_id = ?", student))
	assert.EqualValues(t, 6, count(t, db, &attendanceModel.HomeworkSubmissionModel{}, "homework_student_id = ?", student))

	var att attendanceModel.AttendanceModel
	require.NoError(t, db.First(&att, "attendance_student_id = ?", student).Error)
	assert.Equal(t, attendanceModel.AttendanceAbsent, att.AttendanceStatus)
}

func TestEnsurePairIdempotent(t *testing.T) {
	db := openTestDB(t)
	lesson := uuid.New()
	student := uuid.New()

	require.NoError(t, EnsurePair(db, lesson, student))
	require.NoError(t, EnsurePair(db, lesson, student))

	assert.EqualValues(t, 1, count(t, db, &attendanceModel.AttendanceModel{}, "attendance_lesson_id = ?", lesson))
	assert.EqualValues(t, 1, count(t, db, &attendanceModel.HomeworkSubmissionModel{}, "homework_lesson_id = ?", lesson))
}

func TestEnsurePairKeepsTeacherSetStatus(t *testing.T) {
	db := openTestDB(t)
	lesson := uuid.New()
	student := uuid.New()

	require.NoError(t, EnsurePair(db, lesson, student))
	require.NoError(t, db.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_lesson_id = ? AND attendance_student_id = ?", lesson, student).
		Update("attendance_status", attendanceModel.AttendancePresent).Error)
	require.NoError(t, db.Model(&attendanceModel.HomeworkSubmissionModel{}).
		Where("homework_lesson_id = ? AND homework_student_id = ?", lesson, student).
		Update("homework_status", attendanceModel.HomeworkAccepted).Error)

	// re-provisioning must never reset what a teacher already graded
	require.NoError(t, EnsurePair(db, lesson, student))

	var att attendanceModel.AttendanceModel
	require.NoError(t, db.First(&att, "attendance_lesson_id = ?", lesson).Error)
	assert.Equal(t, attendanceModel.AttendancePresent, att.AttendanceStatus)

	var hw attendanceModel.HomeworkSubmissionModel
	require.NoError(t, db.First(&hw, "homework_lesson_id = ?", lesson).Error)
	assert.Equal(t, attendanceModel.HomeworkAccepted, hw.HomeworkStatus)
}

func TestEnsureForStudentBackfillsExistingLessons(t *testing.T) {
	db := openTestDB(t)
	g := createGroup(t, db, 1, 4)
	require.NoError(t, ProvisionPlan(db, g))

	// student joins after the plan exists
	late := uuid.New()
	addMember(t, db, g.GroupID, late)
	require.NoError(t, EnsureForStudent(db, g.GroupID, late))

	assert.EqualValues(t, 4, count(t, db, &attendanceModel.AttendanceModel{}, "attendance_student_id = ?", late))
	assert.EqualValues(t, 4, count(t, db, &attendanceModel.HomeworkSubmissionModel{}, "homework_student_id = ?", late))
}

func TestEnsureForLessonCoversAllMembers(t *testing.T) {
	db := openTestDB(t)
	g := createGroup(t, db, 1, 1)
	a, b := uuid.New(), uuid.New()
	addMember(t, db, g.GroupID, a)
	addMember(t, db, g.GroupID, b)

	month := groupModel.MonthModel{MonthGroupID: g.GroupID, MonthNumber: 1, MonthTitle: "Month 1"}
	require.NoError(t, db.Create(&month).Error)
	lesson := groupModel.LessonModel{LessonMonthID: month.MonthID, LessonOrder: 1, LessonTitle: "Lesson 1"}
	require.NoError(t, db.Create(&lesson).Error)

	require.NoError(t, EnsureForLesson(db, g.GroupID, lesson.LessonID))

	assert.EqualValues(t, 2, count(t, db, &attendanceModel.AttendanceModel{}, "attendance_lesson_id = ?", lesson.LessonID))

	gotGroup, err := GroupIDForLesson(db, lesson.LessonID)
	require.NoError(t, err)
	assert.Equal(t, g.GroupID, gotGroup)
}

func TestGroupIDForLessonUnknown(t *testing.T) {
	db := openTestDB(t)
	_, err := GroupIDForLesson(db, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
