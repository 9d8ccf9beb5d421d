// internals/features/academics/group/service/progress_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	groupModel "edcrm_backend/internals/features/academics/group/model"
)

func TestCurrentMonthNumber(t *testing.T) {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	g := &groupModel.GroupModel{GroupDurationMonths: 6, GroupPlannedStart: &start}

	assert.Equal(t, 1, CurrentMonthNumber(g, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, CurrentMonthNumber(g, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2, CurrentMonthNumber(g, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 4, CurrentMonthNumber(g, time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)))
	// past the plan the label sticks at the last month
	assert.Equal(t, 6, CurrentMonthNumber(g, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))

	noStart := &groupModel.GroupModel{GroupDurationMonths: 6}
	assert.Equal(t, 1, CurrentMonthNumber(noStart, time.Now()))
}

func TestCurrentCourseLabel(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	g := &groupModel.GroupModel{GroupDurationMonths: 3, GroupPlannedStart: &start}
	assert.Equal(t, "2", CurrentCourseLabel(g, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)))
}
