package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/attendance"
	"github.com/Chris-debuggs/AttendenceSystem/internal/handler/http/response"
)

type AttendanceHandler interface {
	MonthlyMatrix(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// MonthlyMatrix implements AttendanceHandler.
func (a *AttendanceHandlerImpl) MonthlyMatrix(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}

	matrix, err := a.attendanceService.MonthlyMatrix(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, matrix)
}

// yearMonthParams reads ?year= and ?month= query parameters, defaulting
// to the current month.
func yearMonthParams(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 2000 || parsed > 2200 {
			response.BadRequest(w, "year must be a valid year", nil)
			return 0, 0, false
		}
		year = parsed
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			response.BadRequest(w, "month must be between 1 and 12", nil)
			return 0, 0, false
		}
		month = parsed
	}

	return year, time.Month(month), true
}
