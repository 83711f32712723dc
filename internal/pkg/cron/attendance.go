package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/attendance"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/settings"
)

// AttendanceJobs holds the server's background attendance maintenance.
type AttendanceJobs struct {
	punchRepo    attendance.Repository
	settingsRepo settings.Repository
}

func NewAttendanceJobs(punchRepo attendance.Repository, settingsRepo settings.Repository) *AttendanceJobs {
	return &AttendanceJobs{
		punchRepo:    punchRepo,
		settingsRepo: settingsRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("close_stale_punches", 1*time.Hour, j.CloseStalePunches)
}

// CloseStalePunches closes punch-ins left open on previous days, using
// the configured office end time as the clock-out. Employees who forget
// to punch out would otherwise hold an open punch forever.
func (j *AttendanceJobs) CloseStalePunches(ctx context.Context) error {
	hours, err := j.settingsRepo.Get(ctx)
	if err != nil {
		hours = settings.DefaultOfficeHours()
	}

	closed, err := j.punchRepo.CloseOpenPunchesBefore(ctx, time.Now(), hours.EndTime)
	if err != nil {
		return err
	}
	if closed > 0 {
		slog.Info("closed stale punches", "count", closed)
	}
	return nil
}
