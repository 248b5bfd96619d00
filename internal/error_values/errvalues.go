package errorvalues

import "errors"

var (
	ErrInvalidData        = errors.New("invalid data")
	ErrAlarmNotFound      = errors.New("alarm doesn't exist")
	ErrSoundNotFound      = errors.New("custom sound doesn't exist")
	ErrSettingNotFound    = errors.New("setting key doesn't exist")
	ErrRecurrenceConflict = errors.New("alarm cannot have both a date and weekdays")
	ErrNotRinging         = errors.New("no ringing session is active")
	ErrAlreadyRinging     = errors.New("a ringing session is already active")
	ErrTaskEventMismatch  = errors.New("event doesn't apply to the active task")
	ErrBadSnoozeDuration  = errors.New("snooze duration must be at least one minute")
	ErrSnoozeDisabled     = errors.New("snooze is disabled")
	ErrInvalidToken       = errors.New("invalid token")
	ErrWrongAccessCode    = errors.New("wrong access code")
)
