package calendar

import (
	"testing"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveMonth_DaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29}, // leap year
		{2025, time.February, 28},
		{2025, time.April, 30},
		{2025, time.December, 31},
		{2000, time.February, 29}, // divisible by 400
		{1900, time.February, 28}, // divisible by 100, not 400
	}
	for _, c := range cases {
		policy := resolveMonth(c.year, c.month, nil, nil)
		assert.Equal(t, c.want, policy.DaysInMonth, "%d-%d", c.year, c.month)
	}
}

func TestResolveMonth_WeekendDays(t *testing.T) {
	// June 2025 starts on a Sunday.
	policy := resolveMonth(2025, time.June, nil, nil)

	expected := []int{1, 7, 8, 14, 15, 21, 22, 28, 29}
	assert.Len(t, policy.WeekendDays, len(expected))
	for _, day := range expected {
		assert.True(t, policy.WeekendDays[day], "day %d should be weekend", day)
	}
	assert.False(t, policy.WeekendDays[2])
	assert.False(t, policy.WeekendDays[30])
}

func TestResolveMonth_WorkingDayOverride(t *testing.T) {
	workingDays := []calendar.WorkingDay{
		{Date: date(2025, time.June, 7), Name: "Release Saturday"},
	}

	policy := resolveMonth(2025, time.June, nil, workingDays)

	assert.True(t, policy.WorkingDays[7])
	assert.True(t, policy.WeekendDays[7], "override does not remove the weekend flag")
	assert.False(t, policy.EffectiveWeekend(7))
	assert.True(t, policy.EffectiveWeekend(8))
	assert.Equal(t, 8, policy.WeekendDayCount())
}

func TestResolveMonth_HolidayBeatsWorkingDayOverride(t *testing.T) {
	holidays := []calendar.Holiday{
		{Date: date(2025, time.June, 7), Name: "Founders Day", Type: calendar.HolidayTypePublic},
	}
	workingDays := []calendar.WorkingDay{
		{Date: date(2025, time.June, 7), Name: "Release Saturday"},
	}

	policy := resolveMonth(2025, time.June, holidays, workingDays)

	assert.True(t, policy.IsHoliday(7))
	assert.False(t, policy.WorkingDays[7], "override must be dropped on a declared holiday")
	assert.True(t, policy.EffectiveWeekend(7))
}

func TestResolveMonth_RecurringHolidayProjection(t *testing.T) {
	holidays := []calendar.Holiday{
		// Stored years differ from the queried year.
		{Date: date(2020, time.January, 26), Name: "Republic Day", IsRecurring: true},
		{Date: date(2023, time.January, 1), Name: "New Year", IsRecurring: true},
		{Date: date(2024, time.January, 15), Name: "One-off", IsRecurring: false},
	}

	policy := resolveMonth(2025, time.January, holidays, nil)

	require.Contains(t, policy.HolidayByDay, 26)
	assert.Equal(t, "Republic Day", policy.HolidayByDay[26].Name)
	require.Contains(t, policy.HolidayByDay, 1)
	assert.NotContains(t, policy.HolidayByDay, 15,
		"non-recurring holiday from another year must not project")
}

func TestResolveMonth_ExactYearBeatsRecurringProjection(t *testing.T) {
	recurring := calendar.Holiday{
		Date: date(2020, time.January, 26), Name: "Republic Day", IsRecurring: true,
	}
	exact := calendar.Holiday{
		Date: date(2025, time.January, 26), Name: "Extended Republic Day",
	}

	for _, holidays := range [][]calendar.Holiday{
		{recurring, exact},
		{exact, recurring},
	} {
		policy := resolveMonth(2025, time.January, holidays, nil)
		require.Contains(t, policy.HolidayByDay, 26)
		assert.Equal(t, "Extended Republic Day", policy.HolidayByDay[26].Name,
			"input order must not decide which holiday wins")
	}
}

func TestResolveMonth_RecurringFeb29SkipsCommonYears(t *testing.T) {
	holidays := []calendar.Holiday{
		{Date: date(2024, time.February, 29), Name: "Leap Party", IsRecurring: true},
	}

	common := resolveMonth(2025, time.February, holidays, nil)
	assert.NotContains(t, common.HolidayByDay, 29)

	leap := resolveMonth(2028, time.February, holidays, nil)
	assert.Contains(t, leap.HolidayByDay, 29)
}

func TestResolveMonth_WeekdayOverrideIgnored(t *testing.T) {
	workingDays := []calendar.WorkingDay{
		{Date: date(2025, time.June, 3), Name: "Tuesday"}, // not a weekend
	}

	policy := resolveMonth(2025, time.June, nil, workingDays)
	assert.Empty(t, policy.WorkingDays)
}

func TestResolveMonth_Deterministic(t *testing.T) {
	holidays := []calendar.Holiday{
		{Date: date(2025, time.June, 16), Name: "Company Day", Type: calendar.HolidayTypeCompany},
	}
	workingDays := []calendar.WorkingDay{
		{Date: date(2025, time.June, 21), Name: "Inventory Saturday"},
	}

	first := resolveMonth(2025, time.June, holidays, workingDays)
	second := resolveMonth(2025, time.June, holidays, workingDays)
	assert.Equal(t, first, second)
}
