package payroll

import "errors"

var (
	// ErrNotApplicable signals that payroll cannot be computed because
	// the employee has no base salary set (or it is not positive).
	ErrNotApplicable = errors.New("payroll not applicable: employee has no base salary")
)
