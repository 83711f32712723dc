package attendance

import (
	"testing"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/attendance"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/calendar"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/employee"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/leave"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// June 2025: 30 days, weekends on 1, 7, 8, 14, 15, 21, 22, 28, 29.
func june2025Policy() calendar.MonthPolicy {
	return calendar.MonthPolicy{
		Year:        2025,
		Month:       time.June,
		DaysInMonth: 30,
		WeekendDays: map[int]bool{
			1: true, 7: true, 8: true, 14: true, 15: true,
			21: true, 22: true, 28: true, 29: true,
		},
		WorkingDays:  map[int]bool{},
		HolidayByDay: map[int]calendar.Holiday{},
	}
}

func defaultHours() settings.OfficeHours {
	return settings.OfficeHours{
		StartTime:          settings.NewTimeOfDay(9, 0, 0),
		EndTime:            settings.NewTimeOfDay(18, 0, 0),
		OnTimeLimitMinutes: 15,
	}
}

func testEmployee(id string) employee.Employee {
	return employee.Employee{ID: id, Name: "Employee " + id}
}

func punchOn(employeeID string, day, hour, min int) attendance.Punch {
	in := time.Date(2025, time.June, day, hour, min, 0, 0, time.UTC)
	return attendance.Punch{
		ID:         employeeID + "-p",
		EmployeeID: employeeID,
		Date:       time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC),
		ClockIn:    &in,
	}
}

func TestBuildMatrix_TotalGrid(t *testing.T) {
	employees := []employee.Employee{testEmployee("e1"), testEmployee("e2")}

	matrix := buildMatrix(june2025Policy(), employees, nil, nil, defaultHours())

	require.Len(t, matrix.Cells, 2)
	for _, emp := range employees {
		row := matrix.Cells[emp.ID]
		require.Len(t, row, 30)
		for day := 1; day <= 30; day++ {
			_, ok := row[day]
			assert.True(t, ok, "missing cell for day %d", day)
		}
	}
}

func TestBuildMatrix_Classification(t *testing.T) {
	employees := []employee.Employee{testEmployee("e1")}
	punches := []attendance.Punch{
		punchOn("e1", 2, 9, 10),  // within grace
		punchOn("e1", 3, 9, 20),  // past grace
		punchOn("e1", 28, 10, 0), // weekend punch still classifies
	}
	leaves := []leave.Leave{
		{EmployeeID: "e1", Date: time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC), Status: leave.StatusApproved},
		{EmployeeID: "e1", Date: time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC), Status: leave.StatusPending},
	}

	matrix := buildMatrix(june2025Policy(), employees, punches, leaves, defaultHours())
	row := matrix.Cells["e1"]

	assert.Equal(t, attendance.StatusPresent, row[2].Status)
	assert.Equal(t, attendance.StatusLate, row[3].Status)
	assert.Equal(t, attendance.StatusLeave, row[4].Status)
	assert.Equal(t, attendance.StatusAbsent, row[5].Status,
		"pending leave does not excuse the absence")
	assert.Equal(t, attendance.StatusLate, row[28].Status)
	assert.NotNil(t, row[2].ClockIn)
}

func TestBuildMatrix_WeekendNeverAbsent(t *testing.T) {
	employees := []employee.Employee{testEmployee("e1")}

	matrix := buildMatrix(june2025Policy(), employees, nil, nil, defaultHours())

	for day := 1; day <= 30; day++ {
		cell := matrix.Cells["e1"][day]
		if matrix.WeekendDays[day] {
			assert.Equal(t, attendance.StatusNone, cell.Status, "day %d", day)
		} else {
			assert.Equal(t, attendance.StatusAbsent, cell.Status, "day %d", day)
		}
	}
}

func TestBuildMatrix_HolidayPrecedence(t *testing.T) {
	policy := june2025Policy()
	policy.HolidayByDay[6] = calendar.Holiday{Name: "Founders Day"}
	policy.HolidayByDay[7] = calendar.Holiday{Name: "Weekend Holiday"}

	employees := []employee.Employee{testEmployee("e1")}
	punches := []attendance.Punch{punchOn("e1", 6, 9, 5)}
	leaves := []leave.Leave{
		{EmployeeID: "e1", Date: time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC), Status: leave.StatusApproved},
	}

	matrix := buildMatrix(policy, employees, punches, leaves, defaultHours())

	assert.Equal(t, attendance.StatusHoliday, matrix.Cells["e1"][6].Status,
		"holiday wins over punch and leave")
	assert.Equal(t, attendance.StatusHoliday, matrix.Cells["e1"][7].Status,
		"holiday wins over weekend blanking")
	assert.Equal(t, "Founders Day", matrix.HolidayNames[6])
}

func TestBuildMatrix_WorkingDayOverride(t *testing.T) {
	policy := june2025Policy()
	policy.WorkingDays[7] = true // Saturday turned into a working day

	employees := []employee.Employee{testEmployee("e1")}

	matrix := buildMatrix(policy, employees, nil, nil, defaultHours())

	assert.Equal(t, attendance.StatusAbsent, matrix.Cells["e1"][7].Status,
		"overridden weekend day behaves like a working day")
	assert.Equal(t, attendance.StatusNone, matrix.Cells["e1"][8].Status)
	assert.Equal(t, 8, matrix.WeekendDayCount())
}

func TestBuildMatrix_JoiningDateBlanksEarlierDays(t *testing.T) {
	emp := testEmployee("e1")
	emp.JoiningDate = time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	matrix := buildMatrix(june2025Policy(), []employee.Employee{emp}, nil, nil, defaultHours())
	row := matrix.Cells["e1"]

	for day := 1; day <= 9; day++ {
		assert.Equal(t, attendance.StatusNone, row[day].Status, "day %d precedes joining", day)
	}
	assert.Equal(t, attendance.StatusAbsent, row[10].Status)
}

func TestBuildMatrix_PaidDays(t *testing.T) {
	employees := []employee.Employee{testEmployee("e1")}
	punches := []attendance.Punch{
		punchOn("e1", 2, 9, 0),
		punchOn("e1", 3, 11, 0),
	}
	leaves := []leave.Leave{
		{EmployeeID: "e1", Date: time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC), Status: leave.StatusApproved},
	}

	matrix := buildMatrix(june2025Policy(), employees, punches, leaves, defaultHours())

	assert.Equal(t, 3, matrix.PaidDays("e1"), "on time + late + leave are paid")
}

func TestBuildMatrix_Deterministic(t *testing.T) {
	employees := []employee.Employee{testEmployee("e1"), testEmployee("e2")}
	punches := []attendance.Punch{punchOn("e1", 2, 9, 10), punchOn("e2", 3, 9, 40)}

	first := buildMatrix(june2025Policy(), employees, punches, nil, defaultHours())
	second := buildMatrix(june2025Policy(), employees, punches, nil, defaultHours())

	assert.Equal(t, first, second)
}
