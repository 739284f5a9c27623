package types //nolint:revive,nolintlint // allow pkg name 'types'

import "encoding/json"

const (
	// WasmEventType is the event type emitted for contract executions that return attributes.
	WasmEventType = "wasm"
	// AttributeKeyProposalID is the attribute a cw3 multisig sets on the propose response.
	AttributeKeyProposalID = "proposal_id"
)

// Attribute is a key/value pair attached to an event.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// StringEvent is an event with string attributes, as rendered in transaction logs.
type StringEvent struct {
	Type       string      `json:"type"`
	Attributes []Attribute `json:"attributes"`
}

// ABCIMessageLog is the log of a single message in a transaction.
type ABCIMessageLog struct {
	MsgIndex uint32        `json:"msg_index"`
	Log      string        `json:"log"`
	Events   []StringEvent `json:"events"`
}

// TxResult is the execution result of a broadcast transaction.
type TxResult struct {
	TxHash string           `json:"txhash"`
	Height json.Number      `json:"height"`
	Code   uint32           `json:"code"`
	RawLog string           `json:"raw_log"`
	Logs   []ABCIMessageLog `json:"logs"`
}

// Succeeded reports whether the transaction was executed without error.
func (r *TxResult) Succeeded() bool {
	return r != nil && r.Code == 0
}

// ProposalID returns the identifier of the proposal created by the transaction.
//
// It reads the first log, the first "wasm" event of that log and the first "proposal_id"
// attribute of that event. If any of these is missing it returns false.
func (r *TxResult) ProposalID() (string, bool) {
	if r == nil || len(r.Logs) == 0 {
		return "", false
	}

	for _, event := range r.Logs[0].Events {
		if event.Type != WasmEventType {
			continue
		}

		for _, attr := range event.Attributes {
			if attr.Key == AttributeKeyProposalID {
				return attr.Value, true
			}
		}

		return "", false
	}

	return "", false
}
