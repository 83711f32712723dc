package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/calendar"
	"github.com/google/uuid"
)

type CalendarServiceImpl struct {
	holidayRepo calendar.HolidayRepository
	workdayRepo calendar.WorkingDayRepository
}

func NewCalendarService(
	holidayRepo calendar.HolidayRepository,
	workdayRepo calendar.WorkingDayRepository,
) calendar.Service {
	return &CalendarServiceImpl{
		holidayRepo: holidayRepo,
		workdayRepo: workdayRepo,
	}
}

// CreateHoliday implements calendar.Service.
func (s *CalendarServiceImpl) CreateHoliday(ctx context.Context, req calendar.CreateHolidayRequest) (calendar.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	holiday := calendar.Holiday{
		ID:          uuid.New().String(),
		Date:        date,
		Name:        req.Name,
		Description: req.Description,
		Type:        calendar.HolidayType(req.Type),
		IsRecurring: req.IsRecurring,
	}

	created, err := s.holidayRepo.Create(ctx, holiday)
	if err != nil {
		if errors.Is(err, calendar.ErrHolidayExists) {
			return calendar.HolidayResponse{}, calendar.ErrHolidayExists
		}
		return calendar.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return mapHolidayToResponse(created), nil
}

// ListHolidays implements calendar.Service.
func (s *CalendarServiceImpl) ListHolidays(ctx context.Context, year int) ([]calendar.HolidayResponse, error) {
	holidays, err := s.holidayRepo.ListForYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]calendar.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, mapHolidayToResponse(h))
	}
	return responses, nil
}

// DeleteHoliday implements calendar.Service.
func (s *CalendarServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	if err := s.holidayRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, calendar.ErrHolidayNotFound) {
			return calendar.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

// CreateWorkingDay implements calendar.Service.
func (s *CalendarServiceImpl) CreateWorkingDay(ctx context.Context, req calendar.CreateWorkingDayRequest) (calendar.WorkingDayResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.WorkingDayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	if wd := date.Weekday(); wd != time.Saturday && wd != time.Sunday {
		return calendar.WorkingDayResponse{}, calendar.ErrNotWeekendDate
	}

	workingDay := calendar.WorkingDay{
		ID:          uuid.New().String(),
		Date:        date,
		Name:        req.Name,
		Description: req.Description,
	}

	created, err := s.workdayRepo.Create(ctx, workingDay)
	if err != nil {
		if errors.Is(err, calendar.ErrWorkingDayExists) {
			return calendar.WorkingDayResponse{}, calendar.ErrWorkingDayExists
		}
		return calendar.WorkingDayResponse{}, fmt.Errorf("failed to create working day: %w", err)
	}

	return mapWorkingDayToResponse(created), nil
}

// ListWorkingDays implements calendar.Service.
func (s *CalendarServiceImpl) ListWorkingDays(ctx context.Context, year int) ([]calendar.WorkingDayResponse, error) {
	workingDays, err := s.workdayRepo.ListForYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list working days: %w", err)
	}

	responses := make([]calendar.WorkingDayResponse, 0, len(workingDays))
	for _, w := range workingDays {
		responses = append(responses, mapWorkingDayToResponse(w))
	}
	return responses, nil
}

// DeleteWorkingDay implements calendar.Service.
func (s *CalendarServiceImpl) DeleteWorkingDay(ctx context.Context, id string) error {
	if err := s.workdayRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, calendar.ErrWorkingDayNotFound) {
			return calendar.ErrWorkingDayNotFound
		}
		return fmt.Errorf("failed to delete working day: %w", err)
	}
	return nil
}

// ResolveMonth implements calendar.Service.
func (s *CalendarServiceImpl) ResolveMonth(ctx context.Context, year int, month time.Month) (calendar.MonthPolicy, error) {
	holidays, err := s.holidayRepo.ListForMonth(ctx, year, month)
	if err != nil {
		return calendar.MonthPolicy{}, fmt.Errorf("failed to fetch holidays: %w", err)
	}

	workingDays, err := s.workdayRepo.ListForMonth(ctx, year, month)
	if err != nil {
		return calendar.MonthPolicy{}, fmt.Errorf("failed to fetch working days: %w", err)
	}

	return resolveMonth(year, month, holidays, workingDays), nil
}

// resolveMonth derives the month policy from stored records. Pure: the
// same records always produce the same policy.
func resolveMonth(year int, month time.Month, holidays []calendar.Holiday, workingDays []calendar.WorkingDay) calendar.MonthPolicy {
	policy := calendar.MonthPolicy{
		Year:         year,
		Month:        month,
		DaysInMonth:  daysIn(year, month),
		WeekendDays:  make(map[int]bool),
		WorkingDays:  make(map[int]bool),
		HolidayByDay: make(map[int]calendar.Holiday),
	}

	for day := 1; day <= policy.DaysInMonth; day++ {
		wd := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			policy.WeekendDays[day] = true
		}
	}

	for _, h := range holidays {
		if h.Date.Month() != month {
			continue
		}
		if !h.IsRecurring && h.Date.Year() != year {
			continue
		}
		day := h.Date.Day()
		if day > policy.DaysInMonth {
			// A recurring Feb 29 holiday has no projection in common years.
			continue
		}
		if cur, taken := policy.HolidayByDay[day]; taken {
			// An entry stored for this exact year beats a recurring
			// projection from another year.
			if cur.Date.Year() == year || h.Date.Year() != year {
				continue
			}
		}
		policy.HolidayByDay[day] = h
	}

	for _, w := range workingDays {
		if w.Date.Year() != year || w.Date.Month() != month {
			continue
		}
		day := w.Date.Day()
		if !policy.WeekendDays[day] {
			continue
		}
		if _, clash := policy.HolidayByDay[day]; clash {
			// A declared holiday cannot be a working day; drop the override.
			slog.Warn("working day override clashes with holiday, ignoring override",
				"date", w.Date.Format("2006-01-02"), "name", w.Name)
			continue
		}
		policy.WorkingDays[day] = true
	}

	return policy
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func mapHolidayToResponse(h calendar.Holiday) calendar.HolidayResponse {
	return calendar.HolidayResponse{
		ID:          h.ID,
		Date:        h.Date.Format("2006-01-02"),
		Name:        h.Name,
		Description: h.Description,
		Type:        string(h.Type),
		IsRecurring: h.IsRecurring,
	}
}

func mapWorkingDayToResponse(w calendar.WorkingDay) calendar.WorkingDayResponse {
	return calendar.WorkingDayResponse{
		ID:          w.ID,
		Date:        w.Date.Format("2006-01-02"),
		Name:        w.Name,
		Description: w.Description,
	}
}
