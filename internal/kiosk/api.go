package kiosk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/attendance"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/dashboard"
)

// Backend is the slice of the server API the kiosk terminal needs.
type Backend interface {
	MarkAttendance(ctx context.Context, frame []byte) (attendance.RecognitionResponse, error)
	PunchOut(ctx context.Context, req attendance.PunchOutRequest) (attendance.PunchOutResponse, error)
	LandingStats(ctx context.Context) (dashboard.LandingStatsResponse, error)
}

// HTTPBackend implements Backend against the kiosk HTTP API.
type HTTPBackend struct {
	baseURL string
	client  *http.Client
}

func NewHTTPBackend(baseURL string, timeout time.Duration) *HTTPBackend {
	return &HTTPBackend{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// MarkAttendance implements Backend.
func (b *HTTPBackend) MarkAttendance(ctx context.Context, frame []byte) (attendance.RecognitionResponse, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("frame", "frame.jpg")
	if err != nil {
		return attendance.RecognitionResponse{}, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(frame); err != nil {
		return attendance.RecognitionResponse{}, fmt.Errorf("failed to write frame: %w", err)
	}
	if err := writer.Close(); err != nil {
		return attendance.RecognitionResponse{}, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		b.baseURL+"/api/kiosk/attendance", &body)
	if err != nil {
		return attendance.RecognitionResponse{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var resp attendance.RecognitionResponse
	if err := b.do(req, &resp); err != nil {
		return attendance.RecognitionResponse{}, err
	}
	return resp, nil
}

// PunchOut implements Backend.
func (b *HTTPBackend) PunchOut(ctx context.Context, punchOut attendance.PunchOutRequest) (attendance.PunchOutResponse, error) {
	payload, err := json.Marshal(punchOut)
	if err != nil {
		return attendance.PunchOutResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		b.baseURL+"/api/kiosk/attendance/punch-out", bytes.NewReader(payload))
	if err != nil {
		return attendance.PunchOutResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var resp attendance.PunchOutResponse
	if err := b.do(req, &resp); err != nil {
		return attendance.PunchOutResponse{}, err
	}
	return resp, nil
}

// LandingStats implements Backend.
func (b *HTTPBackend) LandingStats(ctx context.Context) (dashboard.LandingStatsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		b.baseURL+"/api/kiosk/landing-stats", nil)
	if err != nil {
		return dashboard.LandingStatsResponse{}, err
	}

	var resp dashboard.LandingStatsResponse
	if err := b.do(req, &resp); err != nil {
		return dashboard.LandingStatsResponse{}, err
	}
	return resp, nil
}

func (b *HTTPBackend) do(req *http.Request, out interface{}) error {
	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("kiosk api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("kiosk api returned %d: %s", resp.StatusCode, payload)
	}

	// Responses arrive wrapped in the server's envelope.
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode kiosk api response: %w", err)
	}
	return json.Unmarshal(envelope.Data, out)
}
