package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"
	"fmt"
)

// ErrNilAction is returned when an ExecuteMsg without an action is encoded.
var ErrNilAction = errors.New("execute msg has no action")

// UnknownActionKindError is returned when a string does not name a supported action kind.
type UnknownActionKindError struct {
	Kind string
}

// NewUnknownActionKindError creates a new UnknownActionKindError.
func NewUnknownActionKindError(kind string) *UnknownActionKindError {
	return &UnknownActionKindError{Kind: kind}
}

func (e *UnknownActionKindError) Error() string {
	return fmt.Sprintf("unknown action kind: %q", e.Kind)
}

// InvalidExecuteMsgError is returned when an execute message cannot be decoded into an action.
type InvalidExecuteMsgError struct {
	Reason string
}

// NewInvalidExecuteMsgError creates a new InvalidExecuteMsgError.
func NewInvalidExecuteMsgError(reason string) *InvalidExecuteMsgError {
	return &InvalidExecuteMsgError{Reason: reason}
}

func (e *InvalidExecuteMsgError) Error() string {
	return "invalid execute msg: " + e.Reason
}
