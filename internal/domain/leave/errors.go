package leave

import "errors"

var (
	ErrLeaveNotFound = errors.New("leave record not found")
	ErrLeaveExists   = errors.New("a leave for this employee on this date already exists")
)
