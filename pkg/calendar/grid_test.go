package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth_AlwaysReturns42ConsecutiveDays(t *testing.T) {
	for year := 2024; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			days := DaysInMonth(year, month)

			require.Len(t, days, GridSize, "%s %d", month, year)

			// The grid starts on a Monday and advances one day per cell.
			assert.Equal(t, time.Monday, days[0].Weekday(), "%s %d", month, year)
			for i := 1; i < len(days); i++ {
				assert.Equal(t, days[i-1].AddDate(0, 0, 1), days[i], "%s %d cell %d", month, year, i)
			}
		}
	}
}

func TestDaysInMonth_FirstOfMonthIsMondayAligned(t *testing.T) {
	testCases := []struct {
		name         string
		year         int
		month        time.Month
		wantPadding  int
		firstWeekday time.Weekday
	}{
		{name: "month starting on Monday has no padding", year: 2025, month: time.September, wantPadding: 0, firstWeekday: time.Monday},
		{name: "month starting on Sunday needs 6 padding days", year: 2025, month: time.June, wantPadding: 6, firstWeekday: time.Sunday},
		{name: "month starting on Tuesday needs 1 padding day", year: 2025, month: time.July, wantPadding: 1, firstWeekday: time.Tuesday},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			days := DaysInMonth(tc.year, tc.month)

			first := time.Date(tc.year, tc.month, 1, 0, 0, 0, 0, time.Local)
			require.Equal(t, tc.firstWeekday, first.Weekday(), "fixture out of date")

			assert.Equal(t, first, days[tc.wantPadding])
			for i := 0; i < tc.wantPadding; i++ {
				assert.NotEqual(t, tc.month, days[i].Month())
			}
		})
	}
}

func TestFormatDate_ZeroPadded(t *testing.T) {
	d := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "2025-03-07", FormatDate(d))
}

func TestFormatDate_RoundTrip(t *testing.T) {
	for _, s := range []string{"2025-01-01", "2025-06-10", "2024-02-29", "2025-12-31"} {
		parsed, err := ParseDate(s)
		assert.NoError(t, err)
		assert.Equal(t, s, FormatDate(parsed))
	}
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("not-a-date")
	assert.Error(t, err)
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Januari", MonthName(0))
	assert.Equal(t, "December", MonthName(11))
	assert.Equal(t, "", MonthName(12))
	assert.Equal(t, "", MonthName(-1))
}

func TestWeekdayNames_StartsOnMonday(t *testing.T) {
	names := WeekdayNames()
	require.Len(t, names, 7)
	assert.Equal(t, "Mån", names[0])
	assert.Equal(t, "Sön", names[6])
}
