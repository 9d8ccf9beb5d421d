// internals/features/scheduling/service/conflict_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	scheduleModel "edcrm_backend/internals/features/scheduling/model"
)

var (
	ErrRoomConflict    = errors.New("classroom is already booked for this time")
	ErrTeacherConflict = errors.New("teacher is already booked for this time")
)

// Overlaps reports whether two half-open [start, end) slots intersect.
// HH:MM strings compare correctly as plain strings.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}

// Book inserts a schedule after running the room check, then the
// teacher check, inside one transaction.
func Book(db *gorm.DB, s *scheduleModel.ScheduleModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := checkConflicts(tx, s, uuid.Nil); err != nil {
			return err
		}
		return tx.Create(s).Error
	})
}

// Reschedule saves an edited schedule, excluding the row itself from
// both conflict checks.
func Reschedule(db *gorm.DB, s *scheduleModel.ScheduleModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := checkConflicts(tx, s, s.ScheduleID); err != nil {
			return err
		}
		return tx.Save(s).Error
	})
}

// Room first, then teacher, so the caller always reports the room
// conflict when both apply.
func checkConflicts(tx *gorm.DB, s *scheduleModel.ScheduleModel, excludeID uuid.UUID) error {
	busy, err := slotTaken(tx, "schedule_classroom_id", s.ScheduleClassroomID, s, excludeID)
	if err != nil {
		return err
	}
	if busy {
		return ErrRoomConflict
	}
	busy, err = slotTaken(tx, "schedule_teacher_id", s.ScheduleTeacherID, s, excludeID)
	if err != nil {
		return err
	}
	if busy {
		return ErrTeacherConflict
	}
	return nil
}

func slotTaken(tx *gorm.DB, column string, owner uuid.UUID, s *scheduleModel.ScheduleModel, excludeID uuid.UUID) (bool, error) {
	q := tx.Model(&scheduleModel.ScheduleModel{}).
		Where(column+" = ?", owner).
		Where("schedule_date = ?", s.ScheduleDate).
		Where("schedule_start_time < ? AND schedule_end_time > ?", s.ScheduleEndTime, s.ScheduleStartTime)
	if excludeID != uuid.Nil {
		q = q.Where("schedule_id <> ?", excludeID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
