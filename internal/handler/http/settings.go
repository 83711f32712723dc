package http

import (
	"encoding/json"
	"net/http"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/settings"
	"github.com/Chris-debuggs/AttendenceSystem/internal/handler/http/response"
)

type SettingsHandler interface {
	GetOfficeHours(w http.ResponseWriter, r *http.Request)
	UpdateOfficeHours(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settings.Service
}

func NewSettingsHandler(settingsService settings.Service) SettingsHandler {
	return &SettingsHandlerImpl{settingsService: settingsService}
}

// GetOfficeHours implements SettingsHandler.
func (s *SettingsHandlerImpl) GetOfficeHours(w http.ResponseWriter, r *http.Request) {
	hours, err := s.settingsService.GetOfficeHours(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, hours)
}

// UpdateOfficeHours implements SettingsHandler.
func (s *SettingsHandlerImpl) UpdateOfficeHours(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateOfficeHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := s.settingsService.UpdateOfficeHours(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office hours updated successfully", updated)
}
