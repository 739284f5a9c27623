package tfgov

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/cw-tokenfactory/tfgov/sdk"
	"github.com/cw-tokenfactory/tfgov/types"
)

// TokenfactoryIssuerContract is the logical name of the contract that proposal actions target.
const TokenfactoryIssuerContract = "tokenfactory-issuer"

// SubmissionState is the state of a proposal submission.
type SubmissionState int

const (
	StateIdle SubmissionState = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s SubmissionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("SubmissionState(%d)", int(s))
	}
}

// ProposalPath returns the path of the page showing the proposal with the given id.
func ProposalPath(id string) string {
	return "/proposal/" + url.PathEscape(id)
}

// SubmitResult is the outcome of a proposal transaction.
type SubmitResult struct {
	// ProposalID is empty when the transaction result did not report one.
	ProposalID string
	TxResult   *types.TxResult
}

// Path returns the proposal page path, or an empty string if the proposal id is unknown.
func (r *SubmitResult) Path() string {
	if r == nil || r.ProposalID == "" {
		return ""
	}

	return ProposalPath(r.ProposalID)
}

// SubmitterOption configures a Submitter.
type SubmitterOption func(*Submitter)

// WithContractName sets the logical name resolved to the target contract address.
func WithContractName(name string) SubmitterOption {
	return func(s *Submitter) {
		s.contractName = name
	}
}

// WithStateChangeHook registers a function called after every state transition. It is called
// without any lock held, on the goroutine that triggered the transition.
func WithStateChangeHook(hook func(from, to SubmissionState)) SubmitterOption {
	return func(s *Submitter) {
		s.onStateChange = hook
	}
}

// Submitter turns a draft into a single multisig proposal. At most one submission runs at a
// time, and once a proposal was created the same Submitter refuses to create another.
type Submitter struct {
	proposer      sdk.Proposer
	resolver      sdk.ContractResolver
	contractName  string
	onStateChange func(from, to SubmissionState)

	mu    sync.Mutex
	state SubmissionState
}

// NewSubmitter creates a Submitter in the idle state.
func NewSubmitter(proposer sdk.Proposer, resolver sdk.ContractResolver, opts ...SubmitterOption) *Submitter {
	s := &Submitter{
		proposer:     proposer,
		resolver:     resolver,
		contractName: TokenfactoryIssuerContract,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// State returns the current submission state.
func (s *Submitter) State() SubmissionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Reset returns a succeeded or failed Submitter to idle so that a new proposal can be submitted.
// It does nothing while a submission is in progress.
func (s *Submitter) Reset() {
	s.mu.Lock()
	from := s.state
	if from == StateSubmitting || from == StateIdle {
		s.mu.Unlock()
		return
	}
	s.state = StateIdle
	s.mu.Unlock()

	s.notify(from, StateIdle)
}

// Submit sends the draft as one proposal whose messages execute the draft actions in order.
//
// When the transaction succeeds but its result reports no proposal id, Submit returns both the
// result and a *ProposalIDNotFoundError. The proposal most likely exists, so the state still
// moves to StateSucceeded. Any other error leaves the Submitter in StateFailed and the draft can
// be submitted again.
func (s *Submitter) Submit(ctx context.Context, draft *Draft) (*SubmitResult, error) {
	if draft == nil {
		return nil, ErrNilDraft
	}

	if err := s.begin(); err != nil {
		return nil, err
	}

	lggr := sdk.LoggerFrom(ctx)

	res, err := s.submit(ctx, lggr, draft)
	if err != nil {
		var notFound *ProposalIDNotFoundError
		if res != nil && errors.As(err, &notFound) {
			lggr.Warnf("proposal transaction %s succeeded without a proposal id", notFound.TxHash)
			s.transition(StateSucceeded)

			return res, err
		}

		lggr.Errorf("proposal submission failed: %v", err)
		s.transition(StateFailed)

		return nil, err
	}

	lggr.Infof("proposal %s created in transaction %s", res.ProposalID, res.TxResult.TxHash)
	s.transition(StateSucceeded)

	return res, nil
}

func (s *Submitter) submit(ctx context.Context, lggr sdk.Logger, draft *Draft) (*SubmitResult, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	contractAddr, err := s.resolver.ContractAddress(s.contractName)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve %s address: %w", s.contractName, err)
	}

	msgs, err := BuildMessages(draft.Actions.Actions(), contractAddr)
	if err != nil {
		return nil, err
	}

	lggr.Infof("submitting proposal %q with %d messages for contract %s", draft.Title, len(msgs), contractAddr)

	txResult, err := s.proposer.Propose(ctx, draft.Title, draft.Description, msgs)
	if err != nil {
		return nil, NewSubmitError(err)
	}
	if txResult != nil && !txResult.Succeeded() {
		return nil, NewSubmitError(fmt.Errorf("transaction %s failed with code %d: %s",
			txResult.TxHash, txResult.Code, txResult.RawLog))
	}

	id, ok := txResult.ProposalID()
	if !ok || id == "" {
		var hash string
		if txResult != nil {
			hash = txResult.TxHash
		}

		return &SubmitResult{TxResult: txResult}, NewProposalIDNotFoundError(hash)
	}

	return &SubmitResult{ProposalID: id, TxResult: txResult}, nil
}

func (s *Submitter) begin() error {
	s.mu.Lock()
	from := s.state
	switch from {
	case StateSubmitting:
		s.mu.Unlock()
		return ErrSubmissionInFlight
	case StateSucceeded:
		s.mu.Unlock()
		return ErrAlreadySubmitted
	}
	s.state = StateSubmitting
	s.mu.Unlock()

	s.notify(from, StateSubmitting)

	return nil
}

func (s *Submitter) transition(to SubmissionState) {
	s.mu.Lock()
	from := s.state
	s.state = to
	s.mu.Unlock()

	s.notify(from, to)
}

func (s *Submitter) notify(from, to SubmissionState) {
	if s.onStateChange != nil {
		s.onStateChange(from, to)
	}
}
