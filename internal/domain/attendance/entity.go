package attendance

import "time"

// Punch is the raw attendance record produced by the kiosk: one row per
// employee per day, created on the first positive recognition and closed
// by an explicit punch-out.
type Punch struct {
	ID         string
	EmployeeID string
	Date       time.Time
	ClockIn    *time.Time
	ClockOut   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Open reports whether the employee punched in but has not punched out.
func (p Punch) Open() bool {
	return p.ClockIn != nil && p.ClockOut == nil
}
