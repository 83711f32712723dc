package kiosk

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// FrameSource produces JPEG frames for the recognition loop.
type FrameSource interface {
	// NextFrame captures one frame. Blocks until a frame is available or
	// the context ends.
	NextFrame(ctx context.Context) ([]byte, error)

	// Close releases the capture device. Safe to call more than once.
	Close() error
}

// SnapshotFrameSource pulls single JPEG snapshots from an IP camera's
// still-image endpoint.
type SnapshotFrameSource struct {
	url    string
	client *http.Client
}

func NewSnapshotFrameSource(url string, timeout time.Duration) *SnapshotFrameSource {
	return &SnapshotFrameSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// NextFrame implements FrameSource.
func (s *SnapshotFrameSource) NextFrame(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("snapshot request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("camera returned %d", resp.StatusCode)
	}

	frame, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	if len(frame) == 0 {
		return nil, fmt.Errorf("camera returned an empty frame")
	}
	return frame, nil
}

// Close implements FrameSource. Snapshot capture holds no device handle.
func (s *SnapshotFrameSource) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
