package onboarding

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrApplicationExists    = errors.New("application already submitted")
	ErrNotVisitor           = errors.New("user is not a visitor")
	ErrNoPendingPayment     = errors.New("no payment waiting for proof")
	ErrPaymentNotVerifiable = errors.New("payment is not awaiting verification")
	ErrAlreadyMember        = errors.New("user is already a member")
	ErrNotMember            = errors.New("user is not a member")
	ErrProfileExists        = errors.New("member profile already exists")
)
