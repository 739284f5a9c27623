package cw3

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cw-tokenfactory/tfgov/sdk"
	"github.com/cw-tokenfactory/tfgov/types"
)

var _ sdk.Proposer = (*Proposer)(nil)

// Broadcaster signs and broadcasts a wasm execute transaction and waits for it to be included.
type Broadcaster interface {
	ExecuteContract(ctx context.Context, contract string, msg []byte) (*types.TxResult, error)
}

// Proposer creates proposals on a cw3 multisig contract.
type Proposer struct {
	multisig    string
	broadcaster Broadcaster
	latest      *Expiration
}

// ProposerOption configures a Proposer.
type ProposerOption func(*Proposer)

// WithLatest sets the expiration of the proposals created by the Proposer.
func WithLatest(latest Expiration) ProposerOption {
	return func(p *Proposer) {
		p.latest = &latest
	}
}

// NewProposer creates a Proposer for the multisig contract at the given address.
func NewProposer(multisig string, broadcaster Broadcaster, opts ...ProposerOption) *Proposer {
	p := &Proposer{
		multisig:    multisig,
		broadcaster: broadcaster,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Propose implements sdk.Proposer.
func (p *Proposer) Propose(
	ctx context.Context, title, description string, msgs []types.CosmosMsg,
) (*types.TxResult, error) {
	if msgs == nil {
		msgs = []types.CosmosMsg{}
	}

	msg, err := json.Marshal(ExecuteMsg{Propose: &Propose{
		Title:       title,
		Description: description,
		Msgs:        msgs,
		Latest:      p.latest,
	}})
	if err != nil {
		return nil, fmt.Errorf("failed to encode propose msg: %w", err)
	}

	sdk.LoggerFrom(ctx).Debugf("proposing %d messages to multisig %s", len(msgs), p.multisig)

	return p.broadcaster.ExecuteContract(ctx, p.multisig, msg)
}
