package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Result carries one employee's prorated salary for a month. The decimal
// fields keep full precision internally; Rounded produces the two-place
// presentation copy.
type Result struct {
	EmployeeID   string
	Name         string
	Department   string
	TotalDays    int
	WorkingDays  int
	PresentDays  int
	WeekendDays  int
	Holidays     int
	BaseSalary   decimal.Decimal
	PerDaySalary decimal.Decimal
	EarnedSalary decimal.Decimal
	Deduction    decimal.Decimal
}

// Rounded returns a copy with every monetary figure rounded to two
// fraction digits. Rounding happens only here, at the presentation edge,
// so the derived fields never compound rounding error.
func (r Result) Rounded() Result {
	r.BaseSalary = r.BaseSalary.Round(2)
	r.PerDaySalary = r.PerDaySalary.Round(2)
	r.EarnedSalary = r.EarnedSalary.Round(2)
	r.Deduction = r.Deduction.Round(2)
	return r
}

type ResultResponse struct {
	EmployeeID   string          `json:"employee_id"`
	Name         string          `json:"name"`
	Department   string          `json:"department"`
	TotalDays    int             `json:"total_days"`
	WorkingDays  int             `json:"working_days"`
	PresentDays  int             `json:"present_days"`
	WeekendDays  int             `json:"weekend_days"`
	Holidays     int             `json:"holidays"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	PerDaySalary decimal.Decimal `json:"per_day_salary"`
	EarnedSalary decimal.Decimal `json:"earned_salary"`
	Deduction    decimal.Decimal `json:"deduction"`
}

type Service interface {
	// MonthlyPayroll computes payroll for every employee with a base
	// salary; employees without one are skipped.
	MonthlyPayroll(ctx context.Context, year int, month time.Month) ([]ResultResponse, error)

	// EmployeePayroll computes a single employee's payroll. Returns
	// ErrNotApplicable when the employee has no usable base salary.
	EmployeePayroll(ctx context.Context, employeeID string, year int, month time.Month) (ResultResponse, error)
}
