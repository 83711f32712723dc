package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/attendance"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/dashboard"
	"github.com/Chris-debuggs/AttendenceSystem/internal/handler/http/response"
)

// Frames larger than this are rejected before reaching the recognizer.
const maxFrameSize = 8 << 20

type KioskHandler interface {
	MarkAttendance(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	LandingStats(w http.ResponseWriter, r *http.Request)
}

type KioskHandlerImpl struct {
	attendanceService attendance.Service
	dashboardService  dashboard.Service
}

func NewKioskHandler(attendanceService attendance.Service, dashboardService dashboard.Service) KioskHandler {
	return &KioskHandlerImpl{
		attendanceService: attendanceService,
		dashboardService:  dashboardService,
	}
}

// MarkAttendance implements KioskHandler.
func (k *KioskHandlerImpl) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxFrameSize); err != nil {
		response.BadRequest(w, "Expected a multipart frame upload", nil)
		return
	}

	file, _, err := r.FormFile("frame")
	if err != nil {
		response.BadRequest(w, "Missing frame file", nil)
		return
	}
	defer file.Close()

	frame, err := io.ReadAll(io.LimitReader(file, maxFrameSize))
	if err != nil {
		response.BadRequest(w, "Failed to read frame", nil)
		return
	}
	if len(frame) == 0 {
		response.BadRequest(w, "Empty frame", nil)
		return
	}

	result, err := k.attendanceService.MarkAttendance(r.Context(), frame)
	if err != nil {
		slog.Error("MarkAttendance failed", "error", err)
		response.BadGateway(w, "Recognition service unavailable")
		return
	}

	response.Success(w, result)
}

// PunchOut implements KioskHandler.
func (k *KioskHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.PunchOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.EmployeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	result, err := k.attendanceService.PunchOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// LandingStats implements KioskHandler.
func (k *KioskHandlerImpl) LandingStats(w http.ResponseWriter, r *http.Request) {
	stats, err := k.dashboardService.LandingStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
