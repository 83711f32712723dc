package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

type EmployeeType string

const (
	EmployeeTypePermanent EmployeeType = "permanent"
	EmployeeTypeContract  EmployeeType = "contract"
	EmployeeTypeIntern    EmployeeType = "intern"
)

type Employee struct {
	ID           string
	Name         string
	Email        string
	MobileNo     string
	Address      string
	Gender       Gender
	Department   string
	Position     string
	EmployeeType EmployeeType
	JoiningDate  time.Time
	// BaseSalary is the monthly salary; nil means payroll is not
	// applicable for this employee.
	BaseSalary *decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasSalary reports whether payroll can be computed for the employee.
func (e Employee) HasSalary() bool {
	return e.BaseSalary != nil && e.BaseSalary.IsPositive()
}

// JoinedBy reports whether the employee had already joined on the given
// date. A zero JoiningDate means the date is unknown and every day counts.
func (e Employee) JoinedBy(date time.Time) bool {
	if e.JoiningDate.IsZero() {
		return true
	}
	return !date.Before(e.JoiningDate)
}
