package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "with seconds", input: "09:30:15", want: NewTimeOfDay(9, 30, 15)},
		{name: "without seconds", input: "09:30", want: NewTimeOfDay(9, 30, 0)},
		{name: "midnight", input: "00:00", want: NewTimeOfDay(0, 0, 0)},
		{name: "end of day", input: "23:59:59", want: NewTimeOfDay(23, 59, 59)},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "not a time", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "09:00:00", NewTimeOfDay(9, 0, 0).String())
	assert.Equal(t, "18:30:45", NewTimeOfDay(18, 30, 45).String())
}

func TestTimeOfDayAdd(t *testing.T) {
	assert.Equal(t, NewTimeOfDay(9, 30, 0), NewTimeOfDay(9, 0, 0).Add(30))
	assert.Equal(t, NewTimeOfDay(10, 15, 0), NewTimeOfDay(9, 45, 0).Add(30))
}

func TestFromClock(t *testing.T) {
	at := time.Date(2025, time.June, 2, 9, 10, 30, 0, time.UTC)
	assert.Equal(t, NewTimeOfDay(9, 10, 30), FromClock(at))
}

func TestOnTimeDeadline(t *testing.T) {
	hours := OfficeHours{
		StartTime:          NewTimeOfDay(9, 0, 0),
		EndTime:            NewTimeOfDay(18, 0, 0),
		OnTimeLimitMinutes: 15,
	}
	assert.Equal(t, NewTimeOfDay(9, 15, 0), hours.OnTimeDeadline())
}

func TestDefaultOfficeHours(t *testing.T) {
	hours := DefaultOfficeHours()
	assert.Equal(t, NewTimeOfDay(9, 0, 0), hours.StartTime)
	assert.Equal(t, NewTimeOfDay(18, 0, 0), hours.EndTime)
	assert.Equal(t, 30, hours.OnTimeLimitMinutes)
}
