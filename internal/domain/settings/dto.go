package settings

import (
	"context"

	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/validator"
)

type OfficeHoursResponse struct {
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	OnTimeLimitMinutes int    `json:"on_time_limit_minutes"`
}

type UpdateOfficeHoursRequest struct {
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	OnTimeLimitMinutes int    `json:"on_time_limit_minutes"`
}

func (r *UpdateOfficeHoursRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, err := ParseTimeOfDay(r.StartTime); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be HH:MM or HH:MM:SS",
		})
	}
	if _, err := ParseTimeOfDay(r.EndTime); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be HH:MM or HH:MM:SS",
		})
	}
	if r.OnTimeLimitMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "on_time_limit_minutes",
			Message: "on_time_limit_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Service exposes the office-hours policy to handlers and to the
// attendance core.
type Service interface {
	GetOfficeHours(ctx context.Context) (OfficeHoursResponse, error)
	UpdateOfficeHours(ctx context.Context, req UpdateOfficeHoursRequest) (OfficeHoursResponse, error)
}
