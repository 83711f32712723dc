package kiosk

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/config"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/attendance"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/dashboard"
)

// State is the kiosk screen's current mode.
type State string

const (
	// StateIdle shows the camera preview and scans in the background.
	StateIdle State = "idle"
	// StateScanning holds while a frame is out for recognition.
	StateScanning State = "scanning"
	// StateWelcome shows a recognition result; punch-out is offered when
	// the employee was already punched in.
	StateWelcome State = "welcome"
	// StateGoodbye confirms a completed punch-out.
	StateGoodbye State = "goodbye"
)

// Snapshot is a copy of the session's visible state for rendering.
type Snapshot struct {
	State       State
	Message     string
	EmployeeID  string
	Name        string
	CanPunchOut bool
	Stats       dashboard.LandingStatsResponse
}

var ErrPunchOutUnavailable = errors.New("punch out is not available right now")

// defaultClockTick drives the on-screen clock.
const defaultClockTick = time.Second

type scanResult struct {
	resp attendance.RecognitionResponse
	err  error
}

// Session drives one kiosk terminal: a capture tick submits frames for
// recognition, results hold on screen for a fixed duration, then the
// loop returns to scanning. All state transitions happen on the Run
// goroutine; at most one frame is ever in flight.
type Session struct {
	cfg       config.KioskConfig
	frames    FrameSource
	backend   Backend
	clockTick time.Duration

	mu   sync.RWMutex
	view Snapshot

	onState   func(State)
	onMessage func(string)
	onClock   func(time.Time)

	results  chan scanResult
	punchOut chan chan error

	closeOnce sync.Once
	closeErr  error
}

func NewSession(cfg config.KioskConfig, frames FrameSource, backend Backend) *Session {
	return &Session{
		cfg:       cfg,
		frames:    frames,
		backend:   backend,
		clockTick: defaultClockTick,
		view:      Snapshot{State: StateIdle},
		results:   make(chan scanResult),
		punchOut:  make(chan chan error),
	}
}

// OnStateChange registers fn to run after every state transition.
// Register observers before Run; they fire on the session goroutine.
func (s *Session) OnStateChange(fn func(State)) {
	s.onState = fn
}

// OnMessage registers fn to run whenever the screen message changes.
func (s *Session) OnMessage(fn func(string)) {
	s.onMessage = fn
}

// OnClock registers fn to run on every clock tick.
func (s *Session) OnClock(fn func(time.Time)) {
	s.onClock = fn
}

// View returns the current render state.
func (s *Session) View() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// UpdateStats publishes fresh landing stats into the view.
func (s *Session) UpdateStats(stats dashboard.LandingStatsResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Stats = stats
}

// PunchOut requests a punch-out for the employee currently on screen.
// Only valid while the welcome screen offers it.
func (s *Session) PunchOut(ctx context.Context) error {
	reply := make(chan error, 1)
	select {
	case s.punchOut <- reply:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close releases the camera. Run's loop exits via its context; Close is
// safe to call after or concurrently with it.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.frames.Close()
	})
	return s.closeErr
}

// Run executes the session loop until ctx ends.
func (s *Session) Run(ctx context.Context) error {
	capture := time.NewTicker(s.cfg.ScanInterval)
	defer capture.Stop()

	clock := time.NewTicker(s.clockTick)
	defer clock.Stop()

	display := time.NewTimer(0)
	if !display.Stop() {
		<-display.C
	}

	inFlight := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case now := <-clock.C:
			if s.onClock != nil {
				s.onClock(now)
			}

		case <-capture.C:
			if inFlight || s.state() != StateIdle {
				continue
			}
			inFlight = true
			s.setState(StateScanning, Snapshot{})
			go s.scan(ctx)

		case result := <-s.results:
			inFlight = false
			if s.applyResult(result) {
				resetTimer(display, s.cfg.DisplayDuration)
			}

		case <-display.C:
			s.setState(StateIdle, Snapshot{})

		case reply := <-s.punchOut:
			done, err := s.handlePunchOut(ctx)
			reply <- err
			if done {
				resetTimer(display, s.cfg.DisplayDuration)
			}
		}
	}
}

// scan captures one frame and submits it. The result is held back until
// the dwell elapses so the screen does not flicker through the scanning
// state.
func (s *Session) scan(ctx context.Context) {
	started := time.Now()

	reqCtx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	result := scanResult{}
	frame, err := s.frames.NextFrame(reqCtx)
	if err != nil {
		result.err = err
	} else {
		result.resp, result.err = s.backend.MarkAttendance(reqCtx, frame)
	}

	if wait := s.cfg.ScanDwell - time.Since(started); wait > 0 {
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return
		}
	}

	select {
	case s.results <- result:
	case <-ctx.Done():
	}
}

// applyResult moves the session out of the scanning state and reports
// whether the display timer should start.
func (s *Session) applyResult(result scanResult) bool {
	if result.err != nil {
		slog.Warn("recognition attempt failed", slog.Any("error", result.err))
		s.setState(StateIdle, Snapshot{})
		return false
	}

	resp := result.resp
	if !resp.Matched {
		// Nobody recognizable in frame; keep scanning quietly.
		s.setState(StateIdle, Snapshot{})
		return false
	}

	s.setState(StateWelcome, Snapshot{
		Message:     resp.Message,
		EmployeeID:  resp.EmployeeID,
		Name:        resp.Name,
		CanPunchOut: resp.AlreadyPresent,
	})
	return true
}

func (s *Session) handlePunchOut(ctx context.Context) (bool, error) {
	view := s.View()
	if view.State != StateWelcome || !view.CanPunchOut {
		return false, ErrPunchOutUnavailable
	}

	reqCtx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	resp, err := s.backend.PunchOut(reqCtx, attendance.PunchOutRequest{
		EmployeeID: view.EmployeeID,
	})
	if err != nil {
		return false, err
	}

	s.setState(StateGoodbye, Snapshot{
		Message:    resp.Message,
		EmployeeID: view.EmployeeID,
		Name:       view.Name,
	})
	return true, nil
}

func (s *Session) state() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view.State
}

// setState swaps the visible snapshot and notifies observers. Callbacks
// run outside the lock so they may call View.
func (s *Session) setState(state State, next Snapshot) {
	s.mu.Lock()
	prev := s.view
	next.State = state
	next.Stats = prev.Stats
	s.view = next
	s.mu.Unlock()

	if s.onState != nil && prev.State != state {
		s.onState(state)
	}
	if s.onMessage != nil && prev.Message != next.Message {
		s.onMessage(next.Message)
	}
}

func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
