package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settingsRepo settings.Repository
}

func NewSettingsService(settingsRepo settings.Repository) settings.Service {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

func (s *SettingsServiceImpl) GetOfficeHours(ctx context.Context) (settings.OfficeHoursResponse, error) {
	hours, err := s.settingsRepo.Get(ctx)
	if errors.Is(err, settings.ErrSettingsNotFound) {
		// The seed row is missing; serve the defaults rather than 404ing
		// the whole admin console.
		hours = settings.DefaultOfficeHours()
	} else if err != nil {
		return settings.OfficeHoursResponse{}, fmt.Errorf("failed to load office hours: %w", err)
	}
	return mapOfficeHoursToResponse(hours), nil
}

func (s *SettingsServiceImpl) UpdateOfficeHours(ctx context.Context, req settings.UpdateOfficeHoursRequest) (settings.OfficeHoursResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.OfficeHoursResponse{}, err
	}

	startTime, err := settings.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return settings.OfficeHoursResponse{}, err
	}
	endTime, err := settings.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return settings.OfficeHoursResponse{}, err
	}

	hours := settings.OfficeHours{
		StartTime:          startTime,
		EndTime:            endTime,
		OnTimeLimitMinutes: req.OnTimeLimitMinutes,
		UpdatedAt:          time.Now(),
	}
	if err := s.settingsRepo.Update(ctx, hours); err != nil {
		return settings.OfficeHoursResponse{}, fmt.Errorf("failed to update office hours: %w", err)
	}
	return mapOfficeHoursToResponse(hours), nil
}

func mapOfficeHoursToResponse(hours settings.OfficeHours) settings.OfficeHoursResponse {
	return settings.OfficeHoursResponse{
		StartTime:          hours.StartTime.String(),
		EndTime:            hours.EndTime.String(),
		OnTimeLimitMinutes: hours.OnTimeLimitMinutes,
	}
}
