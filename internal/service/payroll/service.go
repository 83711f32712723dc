package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/attendance"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/employee"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	attendanceService attendance.Service
	employeeRepo      employee.Repository
}

func NewPayrollService(
	attendanceService attendance.Service,
	employeeRepo employee.Repository,
) payroll.Service {
	return &PayrollServiceImpl{
		attendanceService: attendanceService,
		employeeRepo:      employeeRepo,
	}
}

func (s *PayrollServiceImpl) MonthlyPayroll(ctx context.Context, year int, month time.Month) ([]payroll.ResultResponse, error) {
	matrix, err := s.attendanceService.Matrix(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to build attendance matrix: %w", err)
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	results := make([]payroll.ResultResponse, 0, len(employees))
	for _, emp := range employees {
		if !emp.HasSalary() {
			continue
		}
		results = append(results, mapResultToResponse(compute(matrix, emp)))
	}
	return results, nil
}

func (s *PayrollServiceImpl) EmployeePayroll(ctx context.Context, employeeID string, year int, month time.Month) (payroll.ResultResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.ResultResponse{}, err
	}
	if !emp.HasSalary() {
		return payroll.ResultResponse{}, payroll.ErrNotApplicable
	}

	matrix, err := s.attendanceService.Matrix(ctx, year, month)
	if err != nil {
		return payroll.ResultResponse{}, fmt.Errorf("failed to build attendance matrix: %w", err)
	}

	return mapResultToResponse(compute(matrix, emp)), nil
}

// compute prorates one employee's monthly salary against the derived
// matrix. Working days are calendar days net of effective weekend days;
// holidays stay inside the denominator so a holiday month does not
// inflate the per-day rate.
func compute(matrix attendance.Matrix, emp employee.Employee) payroll.Result {
	weekendDays := matrix.WeekendDayCount()
	workingDays := matrix.DaysInMonth - weekendDays
	presentDays := matrix.PaidDays(emp.ID)
	base := *emp.BaseSalary

	result := payroll.Result{
		EmployeeID:  emp.ID,
		Name:        emp.Name,
		Department:  emp.Department,
		TotalDays:   matrix.DaysInMonth,
		WorkingDays: workingDays,
		PresentDays: presentDays,
		WeekendDays: weekendDays,
		Holidays:    len(matrix.HolidayNames),
		BaseSalary:  base,
	}

	if workingDays <= 0 {
		// Degenerate calendar; nothing to deduct against.
		result.EarnedSalary = base
		result.Deduction = decimal.Zero
		result.PerDaySalary = decimal.Zero
		return result
	}

	result.PerDaySalary = base.Div(decimal.NewFromInt(int64(workingDays)))
	result.EarnedSalary = result.PerDaySalary.Mul(decimal.NewFromInt(int64(presentDays)))

	// Paid days beyond the working-day count (weekend punches) never earn
	// past the base salary.
	if result.EarnedSalary.GreaterThan(base) {
		result.EarnedSalary = base
	}
	result.Deduction = base.Sub(result.EarnedSalary)
	return result
}

func mapResultToResponse(r payroll.Result) payroll.ResultResponse {
	r = r.Rounded()
	return payroll.ResultResponse{
		EmployeeID:   r.EmployeeID,
		Name:         r.Name,
		Department:   r.Department,
		TotalDays:    r.TotalDays,
		WorkingDays:  r.WorkingDays,
		PresentDays:  r.PresentDays,
		WeekendDays:  r.WeekendDays,
		Holidays:     r.Holidays,
		BaseSalary:   r.BaseSalary,
		PerDaySalary: r.PerDaySalary,
		EarnedSalary: r.EarnedSalary,
		Deduction:    r.Deduction,
	}
}
