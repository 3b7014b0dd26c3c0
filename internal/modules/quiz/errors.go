package quiz

import "errors"

var (
	ErrVideoNotFound    = errors.New("video not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrOptionNotFound   = errors.New("option not found")
	ErrOptionMismatch   = errors.New("option does not belong to this question")
	ErrNoCorrectOption  = errors.New("at least one option must be marked as correct")
	ErrMultipleCorrect  = errors.New("only one option can be marked as correct")
	ErrTooFewOptions    = errors.New("question must keep at least 2 options")
)
