package attendance

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/attendance"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/employee"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/leave"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/settings"
	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/recognizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecognizer struct {
	match recognizer.Match
	err   error
}

func (r *stubRecognizer) SubmitFrame(ctx context.Context, frame []byte) (recognizer.Match, error) {
	return r.match, r.err
}

type memPunchRepo struct {
	mu      sync.Mutex
	punches map[string]*attendance.Punch // keyed by employeeID|date
}

func newMemPunchRepo() *memPunchRepo {
	return &memPunchRepo{punches: map[string]*attendance.Punch{}}
}

func punchKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (r *memPunchRepo) Create(ctx context.Context, punch attendance.Punch) (attendance.Punch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := punchKey(punch.EmployeeID, punch.Date)
	if existing, ok := r.punches[key]; ok {
		return *existing, nil
	}
	stored := punch
	r.punches[key] = &stored
	return stored, nil
}

func (r *memPunchRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Punch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	punch, ok := r.punches[punchKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	copied := *punch
	return &copied, nil
}

func (r *memPunchRepo) SetClockOut(ctx context.Context, employeeID string, date time.Time, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	punch, ok := r.punches[punchKey(employeeID, date)]
	if !ok {
		return attendance.ErrNotPunchedIn
	}
	if punch.ClockOut != nil {
		return attendance.ErrAlreadyPunchedOut
	}
	punch.ClockOut = &at
	return nil
}

func (r *memPunchRepo) ListForMonth(ctx context.Context, year int, month time.Month) ([]attendance.Punch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []attendance.Punch
	for _, punch := range r.punches {
		if punch.Date.Year() == year && punch.Date.Month() == month {
			out = append(out, *punch)
		}
	}
	return out, nil
}

func (r *memPunchRepo) ListForDate(ctx context.Context, date time.Time) ([]attendance.Punch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []attendance.Punch
	for _, punch := range r.punches {
		if punch.Date.Equal(dateOnly(date)) {
			out = append(out, *punch)
		}
	}
	return out, nil
}

func (r *memPunchRepo) CloseOpenPunchesBefore(ctx context.Context, before time.Time, endOfDay settings.TimeOfDay) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	day := dateOnly(before)
	closed := 0
	for _, punch := range r.punches {
		if punch.Date.Before(day) && punch.ClockIn != nil && punch.ClockOut == nil {
			at := punch.Date.Add(time.Duration(endOfDay) * time.Second)
			punch.ClockOut = &at
			closed++
		}
	}
	return closed, nil
}

type stubEmployeeRepo struct {
	byID map[string]employee.Employee
}

func (r *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := r.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *stubEmployeeRepo) GetByName(ctx context.Context, name string) (employee.Employee, error) {
	for _, emp := range r.byID {
		if emp.Name == name {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(r.byID))
	for _, emp := range r.byID {
		out = append(out, emp)
	}
	return out, nil
}

func (r *stubEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }
func (r *stubEmployeeRepo) Delete(ctx context.Context, id string) error             { return nil }
func (r *stubEmployeeRepo) Count(ctx context.Context) (int, error)                  { return len(r.byID), nil }

type stubLeaveRepo struct{}

func (stubLeaveRepo) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) { return l, nil }
func (stubLeaveRepo) Delete(ctx context.Context, id string) error                    { return nil }
func (stubLeaveRepo) ListForMonth(ctx context.Context, year int, month time.Month) ([]leave.Leave, error) {
	return nil, nil
}
func (stubLeaveRepo) ListForYear(ctx context.Context, year int) ([]leave.Leave, error) {
	return nil, nil
}
func (stubLeaveRepo) ListForEmployee(ctx context.Context, employeeID string, year *int) ([]leave.Leave, error) {
	return nil, nil
}
func (stubLeaveRepo) ApprovedOnDate(ctx context.Context, date time.Time) (int, error) {
	return 0, nil
}

type stubSettingsRepo struct {
	hours settings.OfficeHours
	err   error
}

func (r *stubSettingsRepo) Get(ctx context.Context) (settings.OfficeHours, error) {
	if r.err != nil {
		return settings.OfficeHours{}, r.err
	}
	return r.hours, nil
}

func (r *stubSettingsRepo) Update(ctx context.Context, hours settings.OfficeHours) error {
	return nil
}

type noopEmail struct{}

func (noopEmail) SendPunchIn(to, employeeName, date, clockTime, status string) error { return nil }
func (noopEmail) SendPunchOut(to, employeeName, date, clockTime string) error        { return nil }

func newTestService(rec *stubRecognizer, punches *memPunchRepo) attendance.Service {
	employees := &stubEmployeeRepo{byID: map[string]employee.Employee{
		"EMP001": {ID: "EMP001", Name: "Asha"},
	}}
	settingsRepo := &stubSettingsRepo{hours: settings.OfficeHours{
		StartTime:          settings.NewTimeOfDay(0, 0, 0),
		EndTime:            settings.NewTimeOfDay(23, 59, 59),
		OnTimeLimitMinutes: 24 * 60,
	}}
	return NewAttendanceService(punches, employees, stubLeaveRepo{}, settingsRepo, nil, rec, noopEmail{})
}

func TestMarkAttendance_FirstPunchOfTheDay(t *testing.T) {
	rec := &stubRecognizer{match: recognizer.Match{Matched: true, EmployeeID: "EMP001", Name: "Asha"}}
	punches := newMemPunchRepo()
	svc := newTestService(rec, punches)

	resp, err := svc.MarkAttendance(context.Background(), []byte("frame"))
	require.NoError(t, err)

	assert.True(t, resp.Matched)
	assert.Equal(t, "marked", resp.Status)
	assert.False(t, resp.AlreadyPresent)
	assert.Contains(t, resp.Message, "Asha")

	stored, err := punches.GetByEmployeeAndDate(context.Background(), "EMP001", dateOnly(time.Now()))
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotNil(t, stored.ClockIn)
	assert.Nil(t, stored.ClockOut)
}

func TestMarkAttendance_SecondSightingOffersPunchOut(t *testing.T) {
	rec := &stubRecognizer{match: recognizer.Match{Matched: true, EmployeeID: "EMP001", Name: "Asha"}}
	punches := newMemPunchRepo()
	svc := newTestService(rec, punches)

	_, err := svc.MarkAttendance(context.Background(), []byte("frame"))
	require.NoError(t, err)

	resp, err := svc.MarkAttendance(context.Background(), []byte("frame"))
	require.NoError(t, err)

	assert.Equal(t, "already_present", resp.Status)
	assert.True(t, resp.AlreadyPresent)
	assert.Equal(t, "Welcome, Asha! Punch out?", resp.Message)
}

func TestMarkAttendance_AfterPunchOut(t *testing.T) {
	rec := &stubRecognizer{match: recognizer.Match{Matched: true, EmployeeID: "EMP001", Name: "Asha"}}
	punches := newMemPunchRepo()
	svc := newTestService(rec, punches)

	_, err := svc.MarkAttendance(context.Background(), []byte("frame"))
	require.NoError(t, err)
	_, err = svc.PunchOut(context.Background(), attendance.PunchOutRequest{EmployeeID: "EMP001"})
	require.NoError(t, err)

	resp, err := svc.MarkAttendance(context.Background(), []byte("frame"))
	require.NoError(t, err)

	assert.Equal(t, "already_punched_out", resp.Status)
	assert.False(t, resp.AlreadyPresent)
}

func TestMarkAttendance_UnmatchedFrame(t *testing.T) {
	rec := &stubRecognizer{match: recognizer.Match{Matched: false}}
	svc := newTestService(rec, newMemPunchRepo())

	resp, err := svc.MarkAttendance(context.Background(), []byte("frame"))
	require.NoError(t, err)

	assert.False(t, resp.Matched)
	assert.Equal(t, "No registered face recognized", resp.Message)
}

func TestMarkAttendance_UnknownEmployee(t *testing.T) {
	rec := &stubRecognizer{match: recognizer.Match{Matched: true, EmployeeID: "GHOST"}}
	punches := newMemPunchRepo()
	svc := newTestService(rec, punches)

	resp, err := svc.MarkAttendance(context.Background(), []byte("frame"))
	require.NoError(t, err)

	assert.False(t, resp.Matched)
	assert.Contains(t, resp.Message, "register")
}

func TestMarkAttendance_RecognizerFailure(t *testing.T) {
	rec := &stubRecognizer{err: errors.New("connection refused")}
	svc := newTestService(rec, newMemPunchRepo())

	_, err := svc.MarkAttendance(context.Background(), []byte("frame"))
	assert.Error(t, err)
}

func TestPunchOut_WithoutPunchIn(t *testing.T) {
	rec := &stubRecognizer{}
	svc := newTestService(rec, newMemPunchRepo())

	_, err := svc.PunchOut(context.Background(), attendance.PunchOutRequest{EmployeeID: "EMP001"})
	assert.ErrorIs(t, err, attendance.ErrNotPunchedIn)
}

func TestPunchOut_Twice(t *testing.T) {
	rec := &stubRecognizer{match: recognizer.Match{Matched: true, EmployeeID: "EMP001", Name: "Asha"}}
	punches := newMemPunchRepo()
	svc := newTestService(rec, punches)

	_, err := svc.MarkAttendance(context.Background(), []byte("frame"))
	require.NoError(t, err)

	_, err = svc.PunchOut(context.Background(), attendance.PunchOutRequest{EmployeeID: "EMP001"})
	require.NoError(t, err)

	_, err = svc.PunchOut(context.Background(), attendance.PunchOutRequest{EmployeeID: "EMP001"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedOut)
}

func TestPunchOut_UnknownEmployee(t *testing.T) {
	rec := &stubRecognizer{}
	svc := newTestService(rec, newMemPunchRepo())

	_, err := svc.PunchOut(context.Background(), attendance.PunchOutRequest{EmployeeID: "GHOST"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
