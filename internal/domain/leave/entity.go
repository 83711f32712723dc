package leave

import "time"

type LeaveType string

const (
	LeaveTypeSick     LeaveType = "sick"
	LeaveTypeCasual   LeaveType = "casual"
	LeaveTypeEarned   LeaveType = "earned"
	LeaveTypePersonal LeaveType = "personal"
)

type LeaveStatus string

const (
	StatusApproved LeaveStatus = "approved"
	StatusPending  LeaveStatus = "pending"
	StatusRejected LeaveStatus = "rejected"
)

// Leave is a single-day approved-absence record. Only approved leaves
// participate in attendance classification and payroll.
type Leave struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Type       LeaveType
	Reason     *string
	Status     LeaveStatus
	CreatedAt  time.Time
}
