package cw3

import (
	"github.com/cw-tokenfactory/tfgov/types"
)

// ExecuteMsg is the execute message of a cw3 multisig contract. Only proposing is supported.
type ExecuteMsg struct {
	Propose *Propose `json:"propose,omitempty"`
}

// Propose creates a new multisig proposal holding msgs. The proposer's vote is counted as yes.
type Propose struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Msgs        []types.CosmosMsg `json:"msgs"`
	// Latest overrides the maximum voting period of the multisig when set.
	Latest *Expiration `json:"latest,omitempty"`
}

// Expiration is a point at which something expires. Exactly one field is set.
type Expiration struct {
	AtHeight *uint64   `json:"at_height,omitempty"`
	AtTime   *string   `json:"at_time,omitempty"`
	Never    *struct{} `json:"never,omitempty"`
}
