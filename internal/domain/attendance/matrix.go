package attendance

import "time"

// Cell is one (employee, day) entry of the monthly matrix.
type Cell struct {
	Status   Status
	ClockIn  *time.Time
	ClockOut *time.Time
}

// Matrix is the dense month grid consumed by the dashboard and the
// payroll calculator. Rebuilt on every query; never persisted.
type Matrix struct {
	Year        int
	Month       time.Month
	DaysInMonth int

	// Cells maps employeeID -> day of month -> cell. Every employee has
	// an entry for every day 1..DaysInMonth.
	Cells map[string]map[int]Cell

	WeekendDays  map[int]bool
	WorkingDays  map[int]bool
	HolidayNames map[int]string
}

// PaidDays counts the employee's days with a paid status.
func (m Matrix) PaidDays(employeeID string) int {
	n := 0
	for _, cell := range m.Cells[employeeID] {
		if cell.Status.Paid() {
			n++
		}
	}
	return n
}

// WeekendDayCount returns weekend days net of working-day overrides.
func (m Matrix) WeekendDayCount() int {
	n := 0
	for day := range m.WeekendDays {
		if !m.WorkingDays[day] {
			n++
		}
	}
	return n
}
