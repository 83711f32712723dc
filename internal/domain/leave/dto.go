package leave

import (
	"context"

	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"leave_date"`
	Type       string  `json:"leave_type"`
	Reason     *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_date",
			Message: "leave_date must be YYYY-MM-DD",
		})
	}
	switch LeaveType(r.Type) {
	case LeaveTypeSick, LeaveTypeCasual, LeaveTypeEarned, LeaveTypePersonal:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be sick, casual, earned or personal",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"leave_date"`
	Type       string  `json:"leave_type"`
	Reason     *string `json:"reason,omitempty"`
	Status     string  `json:"status"`
}

type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	ListForMonth(ctx context.Context, year, month int) ([]LeaveResponse, error)
	ListForYear(ctx context.Context, year int) ([]LeaveResponse, error)
	ListForEmployee(ctx context.Context, employeeID string, year *int) ([]LeaveResponse, error)
	Delete(ctx context.Context, id string) error
}
