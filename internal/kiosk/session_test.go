package kiosk

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/config"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/attendance"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKioskConfig() config.KioskConfig {
	return config.KioskConfig{
		ScanInterval:    5 * time.Millisecond,
		ScanDwell:       0,
		DisplayDuration: 60 * time.Millisecond,
		RequestTimeout:  200 * time.Millisecond,
	}
}

type fakeFrames struct {
	closes atomic.Int32
}

func (f *fakeFrames) NextFrame(ctx context.Context) ([]byte, error) {
	return []byte("jpeg"), nil
}

func (f *fakeFrames) Close() error {
	f.closes.Add(1)
	return nil
}

type fakeBackend struct {
	resp attendance.RecognitionResponse
	err  error

	calls       atomic.Int32
	inFlight    atomic.Int32
	maxInFlight atomic.Int32

	// block, when set, holds MarkAttendance until closed.
	block chan struct{}

	punchOutResp attendance.PunchOutResponse
	punchOutErr  error
	punchOuts    atomic.Int32
}

func (b *fakeBackend) MarkAttendance(ctx context.Context, frame []byte) (attendance.RecognitionResponse, error) {
	b.calls.Add(1)
	current := b.inFlight.Add(1)
	defer b.inFlight.Add(-1)
	for {
		max := b.maxInFlight.Load()
		if current <= max || b.maxInFlight.CompareAndSwap(max, current) {
			break
		}
	}

	if b.block != nil {
		select {
		case <-b.block:
		case <-ctx.Done():
			return attendance.RecognitionResponse{}, ctx.Err()
		}
	}
	return b.resp, b.err
}

func (b *fakeBackend) PunchOut(ctx context.Context, req attendance.PunchOutRequest) (attendance.PunchOutResponse, error) {
	b.punchOuts.Add(1)
	return b.punchOutResp, b.punchOutErr
}

func (b *fakeBackend) LandingStats(ctx context.Context) (dashboard.LandingStatsResponse, error) {
	return dashboard.LandingStatsResponse{}, nil
}

func runSession(t *testing.T, session *Session) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = session.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func startSession(t *testing.T, backend Backend) (*Session, *fakeFrames) {
	t.Helper()

	frames := &fakeFrames{}
	session := NewSession(testKioskConfig(), frames, backend)
	runSession(t, session)
	return session, frames
}

func TestSession_WelcomeThenBackToIdle(t *testing.T) {
	backend := &fakeBackend{
		resp: attendance.RecognitionResponse{
			Matched:    true,
			EmployeeID: "EMP001",
			Name:       "Asha",
			Status:     "marked",
			Message:    "Asha: Attendance marked (On Time)",
		},
	}
	session, _ := startSession(t, backend)

	require.Eventually(t, func() bool {
		return session.View().State == StateWelcome
	}, time.Second, time.Millisecond)

	view := session.View()
	assert.Equal(t, "EMP001", view.EmployeeID)
	assert.Equal(t, "Asha", view.Name)
	assert.Equal(t, "Asha: Attendance marked (On Time)", view.Message)
	assert.False(t, view.CanPunchOut)

	require.Eventually(t, func() bool {
		return session.View().State == StateIdle
	}, time.Second, time.Millisecond, "welcome screen must expire")
}

func TestSession_SingleFrameInFlight(t *testing.T) {
	backend := &fakeBackend{block: make(chan struct{})}
	session, _ := startSession(t, backend)

	// Let several capture ticks elapse while the first request hangs.
	require.Eventually(t, func() bool {
		return backend.calls.Load() == 1
	}, time.Second, time.Millisecond)
	time.Sleep(40 * time.Millisecond)

	assert.Equal(t, int32(1), backend.calls.Load())
	assert.Equal(t, int32(1), backend.maxInFlight.Load())
	assert.Equal(t, StateScanning, session.View().State)

	close(backend.block)
	require.Eventually(t, func() bool {
		return backend.calls.Load() > 1
	}, time.Second, time.Millisecond, "scanning resumes after the response")
	assert.Equal(t, int32(1), backend.maxInFlight.Load())
}

func TestSession_UnmatchedFrameKeepsScanning(t *testing.T) {
	backend := &fakeBackend{
		resp: attendance.RecognitionResponse{Matched: false, Message: "No registered face recognized"},
	}
	session, _ := startSession(t, backend)

	require.Eventually(t, func() bool {
		return backend.calls.Load() >= 3
	}, time.Second, time.Millisecond)

	view := session.View()
	assert.NotEqual(t, StateWelcome, view.State)
	assert.Empty(t, view.Message)
}

func TestSession_RecognizerErrorReturnsToIdle(t *testing.T) {
	backend := &fakeBackend{err: errors.New("recognizer unavailable")}
	session, _ := startSession(t, backend)

	require.Eventually(t, func() bool {
		return backend.calls.Load() >= 2
	}, time.Second, time.Millisecond, "errors must not stall the loop")
	assert.NotEqual(t, StateWelcome, session.View().State)
}

func TestSession_PunchOutFromWelcome(t *testing.T) {
	backend := &fakeBackend{
		resp: attendance.RecognitionResponse{
			Matched:        true,
			EmployeeID:     "EMP001",
			Name:           "Asha",
			AlreadyPresent: true,
			Status:         "already_present",
			Message:        "Welcome, Asha! Punch out?",
		},
		punchOutResp: attendance.PunchOutResponse{
			EmployeeID: "EMP001",
			Message:    "Asha punched out successfully.",
		},
	}
	session, _ := startSession(t, backend)

	require.Eventually(t, func() bool {
		view := session.View()
		return view.State == StateWelcome && view.CanPunchOut
	}, time.Second, time.Millisecond)

	require.NoError(t, session.PunchOut(context.Background()))
	assert.Equal(t, int32(1), backend.punchOuts.Load())

	view := session.View()
	assert.Equal(t, StateGoodbye, view.State)
	assert.Equal(t, "Asha punched out successfully.", view.Message)
}

func TestSession_PunchOutUnavailableWhenIdle(t *testing.T) {
	backend := &fakeBackend{
		resp: attendance.RecognitionResponse{Matched: false},
	}
	session, _ := startSession(t, backend)

	err := session.PunchOut(context.Background())
	assert.ErrorIs(t, err, ErrPunchOutUnavailable)
	assert.Zero(t, backend.punchOuts.Load())
}

func TestSession_UpdateStatsSurvivesTransitions(t *testing.T) {
	backend := &fakeBackend{
		resp: attendance.RecognitionResponse{Matched: true, EmployeeID: "EMP001", Name: "Asha"},
	}
	session, _ := startSession(t, backend)

	session.UpdateStats(dashboard.LandingStatsResponse{TotalEmployees: 12, PresentToday: 7})

	require.Eventually(t, func() bool {
		return session.View().State == StateWelcome
	}, time.Second, time.Millisecond)

	assert.Equal(t, 12, session.View().Stats.TotalEmployees)
	assert.Equal(t, 7, session.View().Stats.PresentToday)
}

func TestSession_ObserversFollowTransitions(t *testing.T) {
	backend := &fakeBackend{
		resp: attendance.RecognitionResponse{
			Matched:    true,
			EmployeeID: "EMP001",
			Name:       "Asha",
			Message:    "Asha: Attendance marked (On Time)",
		},
	}
	session := NewSession(testKioskConfig(), &fakeFrames{}, backend)

	var mu sync.Mutex
	var states []State
	var messages []string
	session.OnStateChange(func(state State) {
		mu.Lock()
		states = append(states, state)
		mu.Unlock()
	})
	session.OnMessage(func(msg string) {
		mu.Lock()
		messages = append(messages, msg)
		mu.Unlock()
	})
	runSession(t, session)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		for _, state := range states {
			if state == StateWelcome {
				return true
			}
		}
		return false
	}, time.Second, time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, states, StateScanning)
	assert.Contains(t, messages, "Asha: Attendance marked (On Time)")
}

func TestSession_ClockObserverTicks(t *testing.T) {
	backend := &fakeBackend{
		resp: attendance.RecognitionResponse{Matched: false},
	}
	session := NewSession(testKioskConfig(), &fakeFrames{}, backend)
	session.clockTick = 5 * time.Millisecond

	var ticks atomic.Int32
	session.OnClock(func(time.Time) {
		ticks.Add(1)
	})
	runSession(t, session)

	require.Eventually(t, func() bool {
		return ticks.Load() >= 3
	}, time.Second, time.Millisecond)
}

func TestSession_CloseIsIdempotent(t *testing.T) {
	backend := &fakeBackend{}
	session, frames := startSession(t, backend)

	require.NoError(t, session.Close())
	require.NoError(t, session.Close())
	assert.Equal(t, int32(1), frames.closes.Load())
}
