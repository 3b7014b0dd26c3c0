package collective

import "errors"

var (
	ErrMeetingNotFound  = errors.New("collective meeting not found")
	ErrAttendeeNotFound = errors.New("member is not invited to this meeting")
	ErrAlreadyHeld      = errors.New("meeting was already held")
	ErrCancelled        = errors.New("meeting is cancelled")
)
