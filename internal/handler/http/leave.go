package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/leave"
	"github.com/Chris-debuggs/AttendenceSystem/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler.
func (l *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := l.leaveService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave recorded successfully", created)
}

// List implements LeaveHandler. Filters combine: ?employee_id= narrows
// to one employee, ?year= and ?month= narrow the period.
func (l *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var year *int
	if raw := query.Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "year must be a valid year", nil)
			return
		}
		year = &parsed
	}

	if employeeID := query.Get("employee_id"); employeeID != "" {
		leaves, err := l.leaveService.ListForEmployee(r.Context(), employeeID, year)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, leaves)
		return
	}

	resolvedYear := 0
	if year != nil {
		resolvedYear = *year
	} else {
		response.BadRequest(w, "year is required", nil)
		return
	}

	if raw := query.Get("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			response.BadRequest(w, "month must be between 1 and 12", nil)
			return
		}
		leaves, err := l.leaveService.ListForMonth(r.Context(), resolvedYear, month)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, leaves)
		return
	}

	leaves, err := l.leaveService.ListForYear(r.Context(), resolvedYear)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leaves)
}

// Delete implements LeaveHandler.
func (l *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	if err := l.leaveService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave deleted successfully", nil)
}
