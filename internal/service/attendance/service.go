package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/attendance"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/calendar"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/employee"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/leave"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/settings"
	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/email"
	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/recognizer"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	punchRepo    attendance.Repository
	employeeRepo employee.Repository
	leaveRepo    leave.Repository
	settingsRepo settings.Repository
	calendarSvc  calendar.Service
	recognizer   recognizer.Client
	emailService email.EmailService
}

func NewAttendanceService(
	punchRepo attendance.Repository,
	employeeRepo employee.Repository,
	leaveRepo leave.Repository,
	settingsRepo settings.Repository,
	calendarSvc calendar.Service,
	recognizerClient recognizer.Client,
	emailService email.EmailService,
) attendance.Service {
	return &AttendanceServiceImpl{
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
		leaveRepo:    leaveRepo,
		settingsRepo: settingsRepo,
		calendarSvc:  calendarSvc,
		recognizer:   recognizerClient,
		emailService: emailService,
	}
}

// MarkAttendance implements attendance.Service.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, frame []byte) (attendance.RecognitionResponse, error) {
	match, err := s.recognizer.SubmitFrame(ctx, frame)
	if err != nil {
		return attendance.RecognitionResponse{}, fmt.Errorf("recognizer unavailable: %w", err)
	}

	if !match.Matched {
		return attendance.RecognitionResponse{
			Matched: false,
			Message: "No registered face recognized",
		}, nil
	}

	emp, err := s.employeeRepo.GetByID(ctx, match.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			// The recognizer knows a face the directory no longer has.
			slog.Warn("recognized face has no employee record", "employee_id", match.EmployeeID)
			return attendance.RecognitionResponse{
				Matched: false,
				Message: "Unknown face - please register first",
			}, nil
		}
		return attendance.RecognitionResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}

	now := time.Now()
	today := dateOnly(now)

	existing, err := s.punchRepo.GetByEmployeeAndDate(ctx, emp.ID, today)
	if err != nil {
		return attendance.RecognitionResponse{}, fmt.Errorf("failed to check today's punch: %w", err)
	}

	if existing != nil {
		if existing.ClockOut != nil {
			return attendance.RecognitionResponse{
				Matched:        true,
				EmployeeID:     emp.ID,
				Name:           emp.Name,
				AlreadyPresent: false,
				Status:         "already_punched_out",
				Message:        fmt.Sprintf("%s: Already punched out for the day.", emp.Name),
			}, nil
		}
		return attendance.RecognitionResponse{
			Matched:        true,
			EmployeeID:     emp.ID,
			Name:           emp.Name,
			AlreadyPresent: true,
			Status:         "already_present",
			Message:        fmt.Sprintf("Welcome, %s! Punch out?", emp.Name),
		}, nil
	}

	punch := attendance.Punch{
		ID:         uuid.New().String(),
		EmployeeID: emp.ID,
		Date:       today,
		ClockIn:    &now,
	}
	if _, err := s.punchRepo.Create(ctx, punch); err != nil {
		return attendance.RecognitionResponse{}, fmt.Errorf("failed to create punch record: %w", err)
	}

	status := attendance.Classify(&now, false, false, s.officeHours(ctx))

	if emp.Email != "" {
		go s.sendPunchInEmail(emp, now, status.Label())
	}

	return attendance.RecognitionResponse{
		Matched:        true,
		EmployeeID:     emp.ID,
		Name:           emp.Name,
		AlreadyPresent: false,
		Status:         "marked",
		Message:        fmt.Sprintf("%s: Attendance marked (%s)", emp.Name, status.Label()),
	}, nil
}

// PunchOut implements attendance.Service.
func (s *AttendanceServiceImpl) PunchOut(ctx context.Context, req attendance.PunchOutRequest) (attendance.PunchOutResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.PunchOutResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.PunchOutResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}

	now := time.Now()
	if err := s.punchRepo.SetClockOut(ctx, emp.ID, dateOnly(now), now); err != nil {
		if errors.Is(err, attendance.ErrNotPunchedIn) || errors.Is(err, attendance.ErrAlreadyPunchedOut) {
			return attendance.PunchOutResponse{}, err
		}
		return attendance.PunchOutResponse{}, fmt.Errorf("failed to punch out: %w", err)
	}

	if emp.Email != "" {
		go s.sendPunchOutEmail(emp, now)
	}

	return attendance.PunchOutResponse{
		EmployeeID: emp.ID,
		Message:    fmt.Sprintf("%s punched out successfully.", emp.Name),
	}, nil
}

// Matrix implements attendance.Service.
func (s *AttendanceServiceImpl) Matrix(ctx context.Context, year int, month time.Month) (attendance.Matrix, error) {
	policy, err := s.calendarSvc.ResolveMonth(ctx, year, month)
	if err != nil {
		return attendance.Matrix{}, fmt.Errorf("failed to resolve month policy: %w", err)
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return attendance.Matrix{}, fmt.Errorf("failed to list employees: %w", err)
	}

	punches, err := s.punchRepo.ListForMonth(ctx, year, month)
	if err != nil {
		return attendance.Matrix{}, fmt.Errorf("failed to list punches: %w", err)
	}

	leaves, err := s.leaveRepo.ListForMonth(ctx, year, month)
	if err != nil {
		return attendance.Matrix{}, fmt.Errorf("failed to list leaves: %w", err)
	}

	return buildMatrix(policy, employees, punches, leaves, s.officeHours(ctx)), nil
}

// MonthlyMatrix implements attendance.Service.
func (s *AttendanceServiceImpl) MonthlyMatrix(ctx context.Context, year int, month time.Month) (attendance.MatrixResponse, error) {
	matrix, err := s.Matrix(ctx, year, month)
	if err != nil {
		return attendance.MatrixResponse{}, err
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return attendance.MatrixResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	return mapMatrixToResponse(matrix, employees), nil
}

// officeHours loads the policy, falling back to the defaults so that a
// degraded settings table still yields a usable grid.
func (s *AttendanceServiceImpl) officeHours(ctx context.Context) settings.OfficeHours {
	hours, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settings.ErrSettingsNotFound) {
			slog.Error("failed to load office hours, using defaults", "error", err)
		}
		return settings.DefaultOfficeHours()
	}
	return hours
}

func (s *AttendanceServiceImpl) sendPunchInEmail(emp employee.Employee, at time.Time, statusLabel string) {
	err := s.emailService.SendPunchIn(
		emp.Email,
		emp.Name,
		at.Format("2006-01-02"),
		at.Format("15:04:05"),
		statusLabel,
	)
	if err != nil {
		slog.Error("failed to send punch-in email", "employee_id", emp.ID, "error", err)
	}
}

func (s *AttendanceServiceImpl) sendPunchOutEmail(emp employee.Employee, at time.Time) {
	err := s.emailService.SendPunchOut(
		emp.Email,
		emp.Name,
		at.Format("2006-01-02"),
		at.Format("15:04:05"),
	)
	if err != nil {
		slog.Error("failed to send punch-out email", "employee_id", emp.ID, "error", err)
	}
}

func mapMatrixToResponse(matrix attendance.Matrix, employees []employee.Employee) attendance.MatrixResponse {
	resp := attendance.MatrixResponse{
		Year:        matrix.Year,
		Month:       int(matrix.Month),
		DaysInMonth: matrix.DaysInMonth,
		WeekendDays: sortedDays(matrix.WeekendDays),
		WorkingDays: sortedDays(matrix.WorkingDays),
		Holidays:    matrix.HolidayNames,
		Employees:   make([]attendance.EmployeeRowResponse, 0, len(employees)),
	}

	for _, emp := range employees {
		row := attendance.EmployeeRowResponse{
			EmployeeID: emp.ID,
			Name:       emp.Name,
			Days:       make(map[int]attendance.DayCellResponse, matrix.DaysInMonth),
		}
		for day, cell := range matrix.Cells[emp.ID] {
			if cell.Status == attendance.StatusNone && cell.ClockIn == nil {
				continue
			}
			row.Days[day] = attendance.DayCellResponse{
				Status:   string(cell.Status),
				Label:    cell.Status.Label(),
				PunchIn:  timePtrToString(cell.ClockIn),
				PunchOut: timePtrToString(cell.ClockOut),
			}
		}
		resp.Employees = append(resp.Employees, row)
	}

	return resp
}

func sortedDays(days map[int]bool) []int {
	out := make([]int, 0, len(days))
	for day := range days {
		out = append(out, day)
	}
	sort.Ints(out)
	return out
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("15:04:05")
	return &formatted
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
