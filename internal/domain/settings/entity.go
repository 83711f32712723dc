package settings

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time expressed as seconds since midnight.
// Punch times are compared against office hours in local kiosk time, so a
// plain offset is enough; no date or zone is attached.
type TimeOfDay int

func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour*3600 + minute*60 + second)
}

// ParseTimeOfDay accepts "15:04" or "15:04:05".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute(), t.Second()), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
}

// FromClock extracts the wall-clock offset of t in its own location.
func FromClock(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
}

func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes*60)
}

func (t TimeOfDay) String() string {
	sec := int(t)
	return fmt.Sprintf("%02d:%02d:%02d", sec/3600, (sec/60)%60, sec%60)
}

// OfficeHours is the process-wide attendance policy. The grace window
// after StartTime during which a punch-in still counts as on time is
// OnTimeLimitMinutes.
type OfficeHours struct {
	StartTime          TimeOfDay
	EndTime            TimeOfDay
	OnTimeLimitMinutes int
	UpdatedAt          time.Time
}

// OnTimeDeadline is the latest punch-in that still classifies as present.
func (o OfficeHours) OnTimeDeadline() TimeOfDay {
	return o.StartTime.Add(o.OnTimeLimitMinutes)
}

// DefaultOfficeHours mirrors the seed row created on first boot:
// 09:00-18:00 with a 30 minute grace window.
func DefaultOfficeHours() OfficeHours {
	return OfficeHours{
		StartTime:          NewTimeOfDay(9, 0, 0),
		EndTime:            NewTimeOfDay(18, 0, 0),
		OnTimeLimitMinutes: 30,
	}
}
