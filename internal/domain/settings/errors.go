package settings

import "errors"

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrSettingsNotFound = errors.New("office settings not found")
)
