package employee

import (
	"context"

	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	MobileNo     string           `json:"mobile_no"`
	Address      string           `json:"address"`
	Gender       string           `json:"gender"`
	Department   string           `json:"department"`
	Position     string           `json:"position"`
	EmployeeType string           `json:"employee_type"`
	JoiningDate  string           `json:"joining_date"`
	BaseSalary   *decimal.Decimal `json:"salary,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is invalid",
		})
	}
	if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "joining_date",
			Message: "joining_date must be YYYY-MM-DD",
		})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID           string           `json:"-"`
	Name         *string          `json:"name,omitempty"`
	Email        *string          `json:"email,omitempty"`
	MobileNo     *string          `json:"mobile_no,omitempty"`
	Address      *string          `json:"address,omitempty"`
	Gender       *string          `json:"gender,omitempty"`
	Department   *string          `json:"department,omitempty"`
	Position     *string          `json:"position,omitempty"`
	EmployeeType *string          `json:"employee_type,omitempty"`
	JoiningDate  *string          `json:"joining_date,omitempty"`
	BaseSalary   *decimal.Decimal `json:"salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is invalid",
		})
	}
	if r.JoiningDate != nil {
		if _, ok := validator.IsValidDate(*r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "joining_date",
				Message: "joining_date must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	MobileNo     string           `json:"mobile_no"`
	Address      string           `json:"address"`
	Gender       string           `json:"gender"`
	Department   string           `json:"department"`
	Position     string           `json:"position"`
	EmployeeType string           `json:"employee_type"`
	JoiningDate  string           `json:"joining_date"`
	BaseSalary   *decimal.Decimal `json:"salary,omitempty"`
}

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}
