package calendar

import "time"

type HolidayType string

const (
	HolidayTypePublic   HolidayType = "PUBLIC"
	HolidayTypeCompany  HolidayType = "COMPANY"
	HolidayTypeOptional HolidayType = "OPTIONAL"
)

// Holiday marks a date as non-working. Recurring holidays repeat every
// year on the same month and day regardless of the year they were stored
// under.
type Holiday struct {
	ID          string
	Date        time.Time
	Name        string
	Description *string
	Type        HolidayType
	IsRecurring bool
	CreatedAt   time.Time
}

// WorkingDay is an administrative override that turns a weekend date into
// a working day. The date must fall on a Saturday or Sunday.
type WorkingDay struct {
	ID          string
	Date        time.Time
	Name        string
	Description *string
	CreatedAt   time.Time
}

// MonthPolicy is the resolved calendar for one month: which day numbers
// are weekend, which weekend days are overridden as working days, and
// which days carry a holiday. Day numbers are 1-based.
type MonthPolicy struct {
	Year         int
	Month        time.Month
	DaysInMonth  int
	WeekendDays  map[int]bool
	WorkingDays  map[int]bool
	HolidayByDay map[int]Holiday
}

// EffectiveWeekend reports whether day is a non-working weekend day,
// i.e. a weekend day without a working-day override.
func (p MonthPolicy) EffectiveWeekend(day int) bool {
	return p.WeekendDays[day] && !p.WorkingDays[day]
}

// IsHoliday reports whether day carries a holiday.
func (p MonthPolicy) IsHoliday(day int) bool {
	_, ok := p.HolidayByDay[day]
	return ok
}

// WeekendDayCount returns the number of weekend days net of working-day
// overrides; this is the payroll denominator's weekend component.
func (p MonthPolicy) WeekendDayCount() int {
	n := 0
	for day := range p.WeekendDays {
		if !p.WorkingDays[day] {
			n++
		}
	}
	return n
}
