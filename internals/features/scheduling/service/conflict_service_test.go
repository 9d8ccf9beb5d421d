// internals/features/scheduling/service/conflict_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	scheduleModel "edcrm_backend/internals/features/scheduling/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&scheduleModel.ScheduleModel{}))
	return db
}

func newSlot(room, teacher uuid.UUID, start, end string) *scheduleModel.ScheduleModel {
	return &scheduleModel.ScheduleModel{
		ScheduleClassroomID: room,
		ScheduleTeacherID:   teacher,
		ScheduleGroupID:     uuid.New(),
		ScheduleDate:        time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC),
		ScheduleStartTime:   start,
		ScheduleEndTime:     end,
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"identical", "10:00", "11:00", "10:00", "11:00", true},
		{"partial tail", "10:00", "11:00", "10:30", "11:30", true},
		{"contained", "10:00", "12:00", "10:30", "11:00", true},
		{"back to back", "10:00", "11:00", "11:00", "12:00", false},
		{"disjoint", "08:00", "09:00", "10:00", "11:00", false},
		{"one minute overlap", "10:00", "11:01", "11:00", "12:00", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			assert.Equal(t, tc.want, Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func TestBookRoomConflict(t *testing.T) {
	db := openTestDB(t)
	room := uuid.New()

	require.NoError(t, Book(db, newSlot(room, uuid.New(), "10:00", "11:00")))

	err := Book(db, newSlot(room, uuid.New(), "10:30", "11:30"))
	assert.ErrorIs(t, err, ErrRoomConflict)

	var cnt int64
	require.NoError(t, db.Model(&scheduleModel.ScheduleModel{}).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestBookTeacherConflict(t *testing.T) {
	db := openTestDB(t)
	teacher := uuid.New()

	require.NoError(t, Book(db, newSlot(uuid.New(), teacher, "10:00", "11:00")))

	// different room, same teacher, overlapping slot
	err := Book(db, newSlot(uuid.New(), teacher, "10:30", "11:30"))
	assert.ErrorIs(t, err, ErrTeacherConflict)
}

func TestBookRoomConflictReportedFirst(t *testing.T) {
	db := openTestDB(t)
	room := uuid.New()
	teacher := uuid.New()

	require.NoError(t, Book(db, newSlot(room, teacher, "10:00", "11:00")))

	// both checks would fail; the room one wins
	err := Book(db, newSlot(room, teacher, "10:00", "11:00"))
	assert.ErrorIs(t, err, ErrRoomConflict)
}

func TestBookAdjacentSlots(t *testing.T) {
	db := openTestDB(t)
	room := uuid.New()
	teacher := uuid.New()

	require.NoError(t, Book(db, newSlot(room, teacher, "10:00", "11:00")))
	require.NoError(t, Book(db, newSlot(room, teacher, "11:00", "12:00")))
}

func TestRescheduleExcludesSelf(t *testing.T) {
	db := openTestDB(t)
	room := uuid.New()
	teacher := uuid.New()

	s := newSlot(room, teacher, "10:00", "11:00")
	require.NoError(t, Book(db, s))

	// shifting the same row within its own slot must not self-conflict
	s.ScheduleStartTime = "10:15"
	s.ScheduleEndTime = "11:15"
	require.NoError(t, Reschedule(db, s))

	var got scheduleModel.ScheduleModel
	require.NoError(t, db.First(&got, "schedule_id = ?", s.ScheduleID).Error)
	assert.Equal(t, "10:15", got.ScheduleStartTime)
}

func TestRescheduleIntoBusySlot(t *testing.T) {
	db := openTestDB(t)
	room := uuid.New()

	require.NoError(t, Book(db, newSlot(room, uuid.New(), "09:00", "10:00")))
	s := newSlot(room, uuid.New(), "12:00", "13:00")
	require.NoError(t, Book(db, s))

	s.ScheduleStartTime = "09:30"
	s.ScheduleEndTime = "10:30"
	assert.ErrorIs(t, Reschedule(db, s), ErrRoomConflict)
}
