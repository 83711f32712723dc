package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/config"
	handler "github.com/Chris-debuggs/AttendenceSystem/internal/handler/http"
	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/cron"
	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/database"
	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/email"
	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/jwt"
	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/recognizer"
	"github.com/Chris-debuggs/AttendenceSystem/internal/repository/postgresql"
	attendanceService "github.com/Chris-debuggs/AttendenceSystem/internal/service/attendance"
	authService "github.com/Chris-debuggs/AttendenceSystem/internal/service/auth"
	calendarService "github.com/Chris-debuggs/AttendenceSystem/internal/service/calendar"
	dashboardService "github.com/Chris-debuggs/AttendenceSystem/internal/service/dashboard"
	employeeService "github.com/Chris-debuggs/AttendenceSystem/internal/service/employee"
	leaveService "github.com/Chris-debuggs/AttendenceSystem/internal/service/leave"
	payrollService "github.com/Chris-debuggs/AttendenceSystem/internal/service/payroll"
	settingsService "github.com/Chris-debuggs/AttendenceSystem/internal/service/settings"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.ValidateServer(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		return fmt.Errorf("failed to initialize email service: %w", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	recognizerClient := recognizer.NewHTTPClient(cfg.Recognizer)

	// Repositories
	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	workingDayRepo := postgresql.NewWorkingDayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	adminRepo := postgresql.NewAdminRepository(db)

	// Services
	calendarSvc := calendarService.NewCalendarService(holidayRepo, workingDayRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		punchRepo, employeeRepo, leaveRepo, settingsRepo,
		calendarSvc, recognizerClient, emailService,
	)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(attendanceSvc, employeeRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	authSvc := authService.NewAuthService(adminRepo, jwtService)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, punchRepo, leaveRepo, settingsRepo)

	// Background maintenance
	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(punchRepo, settingsRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := handler.NewRouter(cfg, jwtService, handler.Handlers{
		Kiosk:      handler.NewKioskHandler(attendanceSvc, dashboardSvc),
		Attendance: handler.NewAttendanceHandler(attendanceSvc),
		Employee:   handler.NewEmployeeHandler(employeeSvc),
		Calendar:   handler.NewCalendarHandler(calendarSvc),
		Leave:      handler.NewLeaveHandler(leaveSvc),
		Payroll:    handler.NewPayrollHandler(payrollSvc),
		Settings:   handler.NewSettingsHandler(settingsSvc),
		Auth:       handler.NewAuthHandler(authSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
