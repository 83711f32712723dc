package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/calendar"
	"github.com/Chris-debuggs/AttendenceSystem/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CalendarHandler interface {
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)

	CreateWorkingDay(w http.ResponseWriter, r *http.Request)
	ListWorkingDays(w http.ResponseWriter, r *http.Request)
	DeleteWorkingDay(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	calendarService calendar.Service
}

func NewCalendarHandler(calendarService calendar.Service) CalendarHandler {
	return &CalendarHandlerImpl{calendarService: calendarService}
}

// CreateHoliday implements CalendarHandler.
func (c *CalendarHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req calendar.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := c.calendarService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created successfully", created)
}

// ListHolidays implements CalendarHandler.
func (c *CalendarHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(w, r)
	if !ok {
		return
	}

	holidays, err := c.calendarService.ListHolidays(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// DeleteHoliday implements CalendarHandler.
func (c *CalendarHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	if err := c.calendarService.DeleteHoliday(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted successfully", nil)
}

// CreateWorkingDay implements CalendarHandler.
func (c *CalendarHandlerImpl) CreateWorkingDay(w http.ResponseWriter, r *http.Request) {
	var req calendar.CreateWorkingDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := c.calendarService.CreateWorkingDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Working day created successfully", created)
}

// ListWorkingDays implements CalendarHandler.
func (c *CalendarHandlerImpl) ListWorkingDays(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(w, r)
	if !ok {
		return
	}

	workingDays, err := c.calendarService.ListWorkingDays(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, workingDays)
}

// DeleteWorkingDay implements CalendarHandler.
func (c *CalendarHandlerImpl) DeleteWorkingDay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Working day ID is required", nil)
		return
	}

	if err := c.calendarService.DeleteWorkingDay(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Working day deleted successfully", nil)
}

func yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 2000 || parsed > 2200 {
			response.BadRequest(w, "year must be a valid year", nil)
			return 0, false
		}
		year = parsed
	}
	return year, true
}
