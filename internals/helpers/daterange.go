// file: internals/helpers/daterange.go
package helper

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ResolveReportWindow turns a report type into a [start, end] date pair.
// Known types: daily, weekly (Monday-based), monthly, yearly. The custom
// type is handled by the caller since it carries explicit dates.
func ResolveReportWindow(reportType string, now time.Time) (time.Time, time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch reportType {
	case "daily":
		return today, today, nil
	case "weekly":
		weekday := int(today.Weekday())
		// time.Weekday has Sunday=0; the week starts Monday
		offset := (weekday + 6) % 7
		start := today.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 6), nil
	case "monthly":
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		end := start.AddDate(0, 1, -1)
		return start, end, nil
	case "yearly":
		start := time.Date(today.Year(), 1, 1, 0, 0, 0, 0, today.Location())
		end := time.Date(today.Year(), 12, 31, 0, 0, 0, 0, today.Location())
		return start, end, nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("unknown report type %q", reportType)
}

// ParseDateQuery parses a YYYY-MM-DD query value, empty means not set.
func ParseDateQuery(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, use YYYY-MM-DD", v)
	}
	return &t, nil
}

// EndOfDay is used when a date-only upper bound filters a timestamp column.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
