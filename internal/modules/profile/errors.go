package profile

import "errors"

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrUserNotFound   = errors.New("user not found")
)
