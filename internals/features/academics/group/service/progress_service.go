// internals/features/academics/group/service/progress_service.go
package service

import (
	"strconv"
	"time"

	groupModel "edcrm_backend/internals/features/academics/group/model"
)

// CurrentMonthNumber derives which month of the plan the group is in,
// clamped to [1, duration]. Before the planned start it is 1.
func CurrentMonthNumber(group *groupModel.GroupModel, now time.Time) int {
	if group.GroupPlannedStart == nil || now.Before(*group.GroupPlannedStart) {
		return 1
	}
	start := *group.GroupPlannedStart
	months := (now.Year()-start.Year())*12 + int(now.Month()) - int(start.Month()) + 1
	if months < 1 {
		months = 1
	}
	if group.GroupDurationMonths > 0 && months > group.GroupDurationMonths {
		months = group.GroupDurationMonths
	}
	return months
}

// CurrentCourseLabel is the human label shown in group lists.
func CurrentCourseLabel(group *groupModel.GroupModel, now time.Time) string {
	return strconv.Itoa(CurrentMonthNumber(group, now))
}
