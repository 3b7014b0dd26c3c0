package visit

import "errors"

var (
	ErrVisitNotFound   = errors.New("visit not found")
	ErrVisitorNotFound = errors.New("visitor member not found")
	ErrVisitedNotFound = errors.New("visited member not found")
	ErrSelfVisit       = errors.New("a member cannot visit themselves")
	ErrAlreadyHeld     = errors.New("visit was already held")
)
