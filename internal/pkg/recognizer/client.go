package recognizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/Chris-debuggs/AttendenceSystem/internal/config"
)

// HTTPClient talks to the external face-matching service.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(cfg config.RecognizerConfig) *HTTPClient {
	return &HTTPClient{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// SubmitFrame implements Client.
func (c *HTTPClient) SubmitFrame(ctx context.Context, frame []byte) (Match, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "frame.jpg")
	if err != nil {
		return Match{}, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(frame); err != nil {
		return Match{}, fmt.Errorf("failed to write frame: %w", err)
	}
	if err := writer.Close(); err != nil {
		return Match{}, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recognize", &body)
	if err != nil {
		return Match{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return Match{}, fmt.Errorf("recognizer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Match{}, fmt.Errorf("recognizer returned %d: %s", resp.StatusCode, payload)
	}

	var match Match
	if err := json.NewDecoder(resp.Body).Decode(&match); err != nil {
		return Match{}, fmt.Errorf("failed to decode recognizer response: %w", err)
	}

	return match, nil
}
