package attendance

import (
	"testing"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/settings"
	"github.com/stretchr/testify/assert"
)

func officeHours(startHour, startMin, graceMinutes int) settings.OfficeHours {
	return settings.OfficeHours{
		StartTime:          settings.NewTimeOfDay(startHour, startMin, 0),
		EndTime:            settings.NewTimeOfDay(18, 0, 0),
		OnTimeLimitMinutes: graceMinutes,
	}
}

func punchAt(hour, min int) *time.Time {
	t := time.Date(2025, time.June, 2, hour, min, 0, 0, time.UTC)
	return &t
}

func TestClassify_OnTimeWithinGrace(t *testing.T) {
	hours := officeHours(9, 0, 15)

	assert.Equal(t, StatusPresent, Classify(punchAt(8, 45), false, false, hours))
	assert.Equal(t, StatusPresent, Classify(punchAt(9, 10), false, false, hours))
	assert.Equal(t, StatusPresent, Classify(punchAt(9, 15), false, false, hours),
		"the grace deadline itself is still on time")
}

func TestClassify_LateAfterGrace(t *testing.T) {
	hours := officeHours(9, 0, 15)

	assert.Equal(t, StatusLate, Classify(punchAt(9, 20), false, false, hours))
	assert.Equal(t, StatusLate, Classify(punchAt(13, 0), false, false, hours))

	lateBySeconds := time.Date(2025, time.June, 2, 9, 15, 1, 0, time.UTC)
	assert.Equal(t, StatusLate, Classify(&lateBySeconds, false, false, hours))
}

func TestClassify_HolidayPrecedence(t *testing.T) {
	hours := officeHours(9, 0, 15)

	assert.Equal(t, StatusHoliday, Classify(nil, true, false, hours))
	assert.Equal(t, StatusHoliday, Classify(punchAt(9, 5), true, false, hours),
		"holiday wins even with punch data")
	assert.Equal(t, StatusHoliday, Classify(nil, true, true, hours))
}

func TestClassify_Leave(t *testing.T) {
	hours := officeHours(9, 0, 15)

	assert.Equal(t, StatusLeave, Classify(nil, false, true, hours))
	// A punch-in on a leave day classifies from the punch; the day is
	// paid either way.
	assert.Equal(t, StatusPresent, Classify(punchAt(9, 0), false, true, hours))
	assert.Equal(t, StatusLate, Classify(punchAt(11, 0), false, true, hours))
}

func TestClassify_AbsentWithoutPunch(t *testing.T) {
	hours := officeHours(9, 0, 15)

	assert.Equal(t, StatusAbsent, Classify(nil, false, false, hours))
}

func TestClassify_ZeroGrace(t *testing.T) {
	hours := officeHours(9, 0, 0)

	assert.Equal(t, StatusPresent, Classify(punchAt(9, 0), false, false, hours))
	assert.Equal(t, StatusLate, Classify(punchAt(9, 1), false, false, hours))
}

func TestStatusLabel(t *testing.T) {
	cases := map[Status]string{
		StatusPresent: "On Time",
		StatusLate:    "Late",
		StatusAbsent:  "Absent",
		StatusLeave:   "L",
		StatusHoliday: "H",
		StatusNone:    "",
	}
	for status, want := range cases {
		assert.Equal(t, want, status.Label())
	}
}

func TestStatusPaid(t *testing.T) {
	assert.True(t, StatusPresent.Paid())
	assert.True(t, StatusLate.Paid())
	assert.True(t, StatusLeave.Paid())
	assert.False(t, StatusAbsent.Paid())
	assert.False(t, StatusHoliday.Paid())
	assert.False(t, StatusNone.Paid())
}
