package meeting

import "errors"

var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrMemberNotFound  = errors.New("member not found")
	ErrPendingExists   = errors.New("member already has a pending meeting")
	ErrNotPending      = errors.New("only pending meetings can be confirmed")
	ErrNotConfirmed    = errors.New("only confirmed meetings can be completed")
	ErrTerminalState   = errors.New("meeting is already completed or cancelled")
	ErrInvalidDuration = errors.New("invalid meeting duration")
)
