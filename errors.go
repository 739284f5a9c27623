package tfgov

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDraft         = errors.New("draft has no actions")
	ErrNilDraft           = errors.New("draft is nil")
	ErrSubmissionInFlight = errors.New("proposal submission already in progress")
	ErrAlreadySubmitted   = errors.New("proposal already submitted")
	ErrComposerLocked     = errors.New("draft cannot be edited while a submission is in progress")
)

// InvalidDraftError is returned when a draft document does not match the draft schema.
type InvalidDraftError struct {
	Err error
}

// NewInvalidDraftError creates a new InvalidDraftError.
func NewInvalidDraftError(err error) *InvalidDraftError {
	return &InvalidDraftError{Err: err}
}

func (e *InvalidDraftError) Error() string {
	return fmt.Sprintf("invalid draft document: %v", e.Err)
}

func (e *InvalidDraftError) Unwrap() error {
	return e.Err
}

// EncodeActionError is returned when an action of a draft cannot be encoded into a contract
// message.
type EncodeActionError struct {
	Index int
	Err   error
}

// NewEncodeActionError creates a new EncodeActionError.
func NewEncodeActionError(index int, err error) *EncodeActionError {
	return &EncodeActionError{Index: index, Err: err}
}

func (e *EncodeActionError) Error() string {
	return fmt.Sprintf("unable to encode action %d: %v", e.Index, e.Err)
}

func (e *EncodeActionError) Unwrap() error {
	return e.Err
}

// SubmitError is returned when the proposal transaction was rejected or could not be sent.
type SubmitError struct {
	Err error
}

// NewSubmitError creates a new SubmitError.
func NewSubmitError(err error) *SubmitError {
	return &SubmitError{Err: err}
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("proposal submission failed: %v", e.Err)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// ProposalIDNotFoundError is returned when a proposal transaction succeeded but its result
// carries no proposal id.
type ProposalIDNotFoundError struct {
	TxHash string
}

// NewProposalIDNotFoundError creates a new ProposalIDNotFoundError.
func NewProposalIDNotFoundError(txHash string) *ProposalIDNotFoundError {
	return &ProposalIDNotFoundError{TxHash: txHash}
}

func (e *ProposalIDNotFoundError) Error() string {
	return fmt.Sprintf("proposal id not found in result of transaction %q", e.TxHash)
}

// InvalidMessageError is returned when a cosmos message is not a wasm execute message.
type InvalidMessageError struct {
	Reason string
}

// NewInvalidMessageError creates a new InvalidMessageError.
func NewInvalidMessageError(reason string) *InvalidMessageError {
	return &InvalidMessageError{Reason: reason}
}

func (e *InvalidMessageError) Error() string {
	return "invalid proposal message: " + e.Reason
}
