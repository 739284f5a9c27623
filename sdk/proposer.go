package sdk

import (
	"context"

	"github.com/cw-tokenfactory/tfgov/types"
)

// Proposer submits a multisig proposal made of the given messages.
//
// This must be implemented by any submission transport. Implementations return the raw
// execution result of the transaction that created the proposal.
type Proposer interface {
	Propose(
		ctx context.Context,
		title string,
		description string,
		msgs []types.CosmosMsg,
	) (*types.TxResult, error)
}

// ContractResolver looks up the address of a deployed contract by its logical name.
type ContractResolver interface {
	ContractAddress(name string) (string, error)
}
