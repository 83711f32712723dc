package attendance

import (
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/attendance"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/calendar"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/employee"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/leave"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/settings"
)

type dayKey struct {
	employeeID string
	day        int
}

// buildMatrix derives the dense month grid. Pure: identical inputs always
// produce an identical matrix, and every (employee, day) cell is present.
func buildMatrix(
	policy calendar.MonthPolicy,
	employees []employee.Employee,
	punches []attendance.Punch,
	leaves []leave.Leave,
	hours settings.OfficeHours,
) attendance.Matrix {
	punchByDay := make(map[dayKey]attendance.Punch, len(punches))
	for _, p := range punches {
		if p.Date.Year() == policy.Year && p.Date.Month() == policy.Month {
			punchByDay[dayKey{p.EmployeeID, p.Date.Day()}] = p
		}
	}

	leaveByDay := make(map[dayKey]bool, len(leaves))
	for _, l := range leaves {
		if l.Status != leave.StatusApproved {
			continue
		}
		if l.Date.Year() == policy.Year && l.Date.Month() == policy.Month {
			leaveByDay[dayKey{l.EmployeeID, l.Date.Day()}] = true
		}
	}

	matrix := attendance.Matrix{
		Year:         policy.Year,
		Month:        policy.Month,
		DaysInMonth:  policy.DaysInMonth,
		Cells:        make(map[string]map[int]attendance.Cell, len(employees)),
		WeekendDays:  make(map[int]bool, len(policy.WeekendDays)),
		WorkingDays:  make(map[int]bool, len(policy.WorkingDays)),
		HolidayNames: make(map[int]string, len(policy.HolidayByDay)),
	}
	for day := range policy.WeekendDays {
		matrix.WeekendDays[day] = true
	}
	for day := range policy.WorkingDays {
		matrix.WorkingDays[day] = true
	}
	for day, h := range policy.HolidayByDay {
		matrix.HolidayNames[day] = h.Name
	}

	for _, emp := range employees {
		row := make(map[int]attendance.Cell, policy.DaysInMonth)
		for day := 1; day <= policy.DaysInMonth; day++ {
			row[day] = classifyCell(policy, emp, day, punchByDay, leaveByDay, hours)
		}
		matrix.Cells[emp.ID] = row
	}

	return matrix
}

func classifyCell(
	policy calendar.MonthPolicy,
	emp employee.Employee,
	day int,
	punchByDay map[dayKey]attendance.Punch,
	leaveByDay map[dayKey]bool,
	hours settings.OfficeHours,
) attendance.Cell {
	var cell attendance.Cell

	punch, hasPunch := punchByDay[dayKey{emp.ID, day}]
	if hasPunch {
		cell.ClockIn = punch.ClockIn
		cell.ClockOut = punch.ClockOut
	}

	date := time.Date(policy.Year, policy.Month, day, 0, 0, 0, 0, time.UTC)
	if !emp.JoinedBy(date) {
		cell.Status = attendance.StatusNone
		return cell
	}

	isHoliday := policy.IsHoliday(day)
	onLeave := leaveByDay[dayKey{emp.ID, day}]

	// Non-working weekend days stay blank rather than ABSENT; they fall
	// out of the payroll denominator instead.
	if !isHoliday && policy.EffectiveWeekend(day) && cell.ClockIn == nil {
		cell.Status = attendance.StatusNone
		return cell
	}

	cell.Status = attendance.Classify(cell.ClockIn, isHoliday, onLeave, hours)
	return cell
}
