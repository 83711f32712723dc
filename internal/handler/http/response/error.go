package response

import (
	"errors"
	"net/http"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/attendance"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/auth"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/calendar"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/employee"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/leave"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/payroll"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/settings"
	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminNotFound):
		NotFound(w, "Admin account not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrPunchNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNotPunchedIn):
		BadRequest(w, "Employee has not punched in today", nil)
	case errors.Is(err, attendance.ErrAlreadyPunchedOut):
		Conflict(w, "Employee has already punched out today")

	// Calendar domain errors
	case errors.Is(err, calendar.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, calendar.ErrHolidayExists):
		Conflict(w, "A holiday on this date already exists")
	case errors.Is(err, calendar.ErrWorkingDayNotFound):
		NotFound(w, "Working day not found")
	case errors.Is(err, calendar.ErrWorkingDayExists):
		Conflict(w, "A working day on this date already exists")
	case errors.Is(err, calendar.ErrNotWeekendDate):
		BadRequest(w, "Working day overrides must fall on a Saturday or Sunday", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave record not found")
	case errors.Is(err, leave.ErrLeaveExists):
		Conflict(w, "A leave for this employee on this date already exists")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrNotApplicable):
		BadRequest(w, "Employee has no base salary configured", nil)

	// Settings domain errors
	case errors.Is(err, settings.ErrInvalidTimeOfDay):
		BadRequest(w, "Invalid time value", nil)
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Office settings not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
