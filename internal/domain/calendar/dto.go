package calendar

import (
	"context"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date        string  `json:"date"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Type        string  `json:"type"`
	IsRecurring bool    `json:"is_recurring"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	switch HolidayType(r.Type) {
	case HolidayTypePublic, HolidayTypeCompany, HolidayTypeOptional:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be PUBLIC, COMPANY or OPTIONAL",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateWorkingDayRequest struct {
	Date        string  `json:"date"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateWorkingDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Type        string  `json:"type"`
	IsRecurring bool    `json:"is_recurring"`
}

type WorkingDayResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Service manages holiday and working-day records and resolves the
// month policy consumed by the attendance matrix and payroll.
type Service interface {
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	ListHolidays(ctx context.Context, year int) ([]HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error

	CreateWorkingDay(ctx context.Context, req CreateWorkingDayRequest) (WorkingDayResponse, error)
	ListWorkingDays(ctx context.Context, year int) ([]WorkingDayResponse, error)
	DeleteWorkingDay(ctx context.Context, id string) error

	ResolveMonth(ctx context.Context, year int, month time.Month) (MonthPolicy, error)
}
