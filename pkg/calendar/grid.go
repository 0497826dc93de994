package calendar

import (
	"fmt"
	"time"
)

// GridSize is the fixed number of cells in a month grid: 6 rows of 7 days.
const GridSize = 42

// DateLayout is the canonical date string format used across the application.
// Zero-padded ISO dates compare lexicographically in chronological order.
const DateLayout = "2006-01-02"

var monthNames = []string{
	"Januari", "Februari", "Mars", "April", "Maj", "Juni",
	"Juli", "Augusti", "September", "Oktober", "November", "December",
}

var weekdayNames = []string{"Mån", "Tis", "Ons", "Tor", "Fre", "Lör", "Sön"}

// FormatDate renders a local calendar date as "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a "YYYY-MM-DD" string into a local calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// DaysInMonth returns the 42 dates shown in the month grid for the given
// year and month: the days of the month itself, preceded by enough days of
// the previous month to align the first cell on a Monday, and followed by
// days of the next month up to exactly 42 cells.
func DaysInMonth(year int, month time.Month) []time.Time {
	days := make([]time.Time, 0, GridSize)

	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)

	// Week starts on Monday; a month starting on Sunday needs 6 padding days.
	padding := int(firstDay.Weekday()) - 1
	if firstDay.Weekday() == time.Sunday {
		padding = 6
	}

	for i := padding; i > 0; i-- {
		days = append(days, firstDay.AddDate(0, 0, -i))
	}

	lastDay := firstDay.AddDate(0, 1, -1)
	for day := 1; day <= lastDay.Day(); day++ {
		days = append(days, time.Date(year, month, day, 0, 0, 0, 0, time.Local))
	}

	remaining := GridSize - len(days)
	for i := 1; i <= remaining; i++ {
		days = append(days, lastDay.AddDate(0, 0, i))
	}

	return days
}

// MonthName returns the localized name for a 0-indexed month (0 = Januari).
func MonthName(month int) string {
	if month < 0 || month > 11 {
		return ""
	}
	return monthNames[month]
}

// WeekdayNames returns the localized weekday headers, starting on Monday.
func WeekdayNames() []string {
	names := make([]string, len(weekdayNames))
	copy(names, weekdayNames)
	return names
}
