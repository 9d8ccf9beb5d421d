package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveReportWindowDaily(t *testing.T) {
	now := time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)
	start, end, err := ResolveReportWindow("daily", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-12", start.Format(DateLayout))
	assert.Equal(t, "2025-03-12", end.Format(DateLayout))
}

func TestResolveReportWindowWeeklyStartsMonday(t *testing.T) {
	// 2025-03-12 is a Wednesday
	now := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	start, end, err := ResolveReportWindow("weekly", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", start.Format(DateLayout))
	assert.Equal(t, "2025-03-16", end.Format(DateLayout))

	// Sunday still belongs to the week that started the previous Monday
	sunday := time.Date(2025, 3, 16, 23, 0, 0, 0, time.UTC)
	start, end, err = ResolveReportWindow("weekly", sunday)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", start.Format(DateLayout))
	assert.Equal(t, "2025-03-16", end.Format(DateLayout))
}

func TestResolveReportWindowMonthly(t *testing.T) {
	now := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	start, end, err := ResolveReportWindow("monthly", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", start.Format(DateLayout))
	// leap year
	assert.Equal(t, "2024-02-29", end.Format(DateLayout))
}

func TestResolveReportWindowYearly(t *testing.T) {
	now := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)
	start, end, err := ResolveReportWindow("yearly", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", start.Format(DateLayout))
	assert.Equal(t, "2025-12-31", end.Format(DateLayout))
}

func TestResolveReportWindowUnknownType(t *testing.T) {
	_, _, err := ResolveReportWindow("quarterly", time.Now())
	assert.Error(t, err)
}

func TestParseDateQuery(t *testing.T) {
	got, err := ParseDateQuery("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseDateQuery("2025-06-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2025-06-01", got.Format(DateLayout))

	_, err = ParseDateQuery("01.06.2025")
	assert.Error(t, err)
}

func TestEndOfDay(t *testing.T) {
	d := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := EndOfDay(d)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.True(t, end.Before(d.AddDate(0, 0, 1)))
}
