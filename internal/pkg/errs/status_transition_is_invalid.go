package errs

import (
	"errors"
	"fmt"
)

var ErrStatusTransitionIsInvalid = errors.New("status transition is invalid")

// StatusTransitionIsInvalidError reports a lifecycle change the transition table does not allow.
type StatusTransitionIsInvalidError struct {
	From string
	To   string
}

func NewStatusTransitionIsInvalidError(from, to fmt.Stringer) *StatusTransitionIsInvalidError {
	return &StatusTransitionIsInvalidError{
		From: from.String(),
		To:   to.String(),
	}
}

func (e *StatusTransitionIsInvalidError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrStatusTransitionIsInvalid.Error(), e.From, e.To)
}

func (e *StatusTransitionIsInvalidError) Unwrap() error {
	return ErrStatusTransitionIsInvalid
}
