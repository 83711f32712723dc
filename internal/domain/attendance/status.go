package attendance

import (
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/settings"
)

// Status is the derived classification of one employee-day. It is never
// stored; every matrix build recomputes it from raw punches, holidays and
// leave records.
type Status string

const (
	// StatusNone marks cells that carry no classification: non-working
	// weekend days and days before an employee joined.
	StatusNone    Status = ""
	StatusPresent Status = "PRESENT"
	StatusLate    Status = "LATE"
	StatusAbsent  Status = "ABSENT"
	StatusLeave   Status = "LEAVE"
	StatusHoliday Status = "HOLIDAY"
)

// Label returns the display form used by the dashboard grid.
func (s Status) Label() string {
	switch s {
	case StatusPresent:
		return "On Time"
	case StatusLate:
		return "Late"
	case StatusAbsent:
		return "Absent"
	case StatusLeave:
		return "L"
	case StatusHoliday:
		return "H"
	default:
		return ""
	}
}

// Paid reports whether the day counts toward the payroll present-day
// tally. Leave days are paid.
func (s Status) Paid() bool {
	return s == StatusPresent || s == StatusLate || s == StatusLeave
}

// Classify derives the status of a single working day. Precedence, first
// match wins: holiday, leave without a punch, punch-in against the
// on-time deadline, absent. A recorded leave with a simultaneous punch-in
// classifies from the punch; payroll pays the day either way.
//
// Weekend days without an override never reach this function; the matrix
// builder leaves them as StatusNone.
func Classify(punchIn *time.Time, isHoliday, onLeave bool, hours settings.OfficeHours) Status {
	if isHoliday {
		return StatusHoliday
	}
	if onLeave && punchIn == nil {
		return StatusLeave
	}
	if punchIn != nil {
		if settings.FromClock(*punchIn) <= hours.OnTimeDeadline() {
			return StatusPresent
		}
		return StatusLate
	}
	return StatusAbsent
}
