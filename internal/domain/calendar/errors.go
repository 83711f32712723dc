package calendar

import "errors"

var (
	ErrHolidayNotFound    = errors.New("holiday not found")
	ErrHolidayExists      = errors.New("a holiday on this date already exists")
	ErrWorkingDayNotFound = errors.New("working day not found")
	ErrWorkingDayExists   = errors.New("a working day on this date already exists")
	ErrNotWeekendDate     = errors.New("working day overrides must fall on a Saturday or Sunday")
)
