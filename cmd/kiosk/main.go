package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/config"
	"github.com/Chris-debuggs/AttendenceSystem/internal/kiosk"
	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/cron"
)

const statsRefreshInterval = 10 * time.Second

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("kiosk exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.ValidateKiosk(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	frames := kiosk.NewSnapshotFrameSource(cfg.Kiosk.CameraStreamURL, cfg.Kiosk.RequestTimeout)
	backend := kiosk.NewHTTPBackend(cfg.Kiosk.APIBaseURL, cfg.Kiosk.RequestTimeout)
	session := kiosk.NewSession(cfg.Kiosk, frames, backend)
	defer session.Close()

	// Terminal display: state transitions are logged, the status line
	// redraws on every clock tick.
	session.OnStateChange(func(state kiosk.State) {
		view := session.View()
		slog.Info("kiosk screen changed",
			"state", state,
			"message", view.Message,
			"employee_id", view.EmployeeID,
		)
	})
	session.OnClock(func(now time.Time) {
		view := session.View()
		fmt.Printf("\r%s  %-8s  %-60s", now.Format("15:04:05"), view.State, view.Message)
	})

	scheduler := cron.NewScheduler()
	scheduler.AddJob("refresh_landing_stats", statsRefreshInterval, func(ctx context.Context) error {
		stats, err := backend.LandingStats(ctx)
		if err != nil {
			return err
		}
		session.UpdateStats(stats)
		return nil
	})
	scheduler.Start()
	defer scheduler.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("kiosk session starting",
		"api", cfg.Kiosk.APIBaseURL,
		"scan_interval", cfg.Kiosk.ScanInterval,
	)
	return session.Run(ctx)
}
