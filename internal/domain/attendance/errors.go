package attendance

import "errors"

var (
	ErrPunchNotFound     = errors.New("attendance record not found")
	ErrNotPunchedIn      = errors.New("employee has not punched in today")
	ErrAlreadyPunchedOut = errors.New("employee has already punched out today")
)
