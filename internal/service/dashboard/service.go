package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/attendance"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/dashboard"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/employee"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/leave"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/settings"
)

const recentEntryLimit = 5

type DashboardServiceImpl struct {
	employeeRepo employee.Repository
	punchRepo    attendance.Repository
	leaveRepo    leave.Repository
	settingsRepo settings.Repository
}

func NewDashboardService(
	employeeRepo employee.Repository,
	punchRepo attendance.Repository,
	leaveRepo leave.Repository,
	settingsRepo settings.Repository,
) dashboard.Service {
	return &DashboardServiceImpl{
		employeeRepo: employeeRepo,
		punchRepo:    punchRepo,
		leaveRepo:    leaveRepo,
		settingsRepo: settingsRepo,
	}
}

// LandingStats aggregates today's headline numbers for the kiosk screen.
func (s *DashboardServiceImpl) LandingStats(ctx context.Context) (dashboard.LandingStatsResponse, error) {
	today := time.Now()

	total, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return dashboard.LandingStatsResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}

	punches, err := s.punchRepo.ListForDate(ctx, today)
	if err != nil {
		return dashboard.LandingStatsResponse{}, fmt.Errorf("failed to list today's punches: %w", err)
	}

	onLeave, err := s.leaveRepo.ApprovedOnDate(ctx, today)
	if err != nil {
		return dashboard.LandingStatsResponse{}, fmt.Errorf("failed to count leaves: %w", err)
	}

	hours, err := s.settingsRepo.Get(ctx)
	if err != nil {
		hours = settings.DefaultOfficeHours()
	}

	stats := dashboard.LandingStatsResponse{
		TotalEmployees: total,
		OnLeave:        onLeave,
		RecentEntries:  []dashboard.RecentEntry{},
	}

	for _, punch := range punches {
		status := attendance.Classify(punch.ClockIn, false, false, hours)
		switch status {
		case attendance.StatusPresent:
			stats.PresentToday++
		case attendance.StatusLate:
			stats.LateToday++
		default:
			continue
		}

		if len(stats.RecentEntries) >= recentEntryLimit || punch.ClockIn == nil {
			continue
		}
		emp, err := s.employeeRepo.GetByID(ctx, punch.EmployeeID)
		if err != nil {
			slog.Warn("skipping punch with unknown employee",
				slog.String("employee_id", punch.EmployeeID))
			continue
		}
		stats.RecentEntries = append(stats.RecentEntries, dashboard.RecentEntry{
			Name:   emp.Name,
			Time:   punch.ClockIn.Format("15:04"),
			Status: status.Label(),
		})
	}

	return stats, nil
}
