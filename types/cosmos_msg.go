package types //nolint:revive,nolintlint // allow pkg name 'types'

import "encoding/json"

// Coin is a string representation of an sdk.Coin.
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// WasmExecuteMsg calls a contract at a known address.
//
// Msg holds the JSON encoded contract message. encoding/json writes it as base64, which is the
// representation the wasm module expects inside a proposal.
type WasmExecuteMsg struct {
	ContractAddr string `json:"contract_addr"`
	Msg          []byte `json:"msg"`
	Funds        []Coin `json:"funds"`
}

// MarshalJSON writes funds as an empty list when none are attached.
func (m WasmExecuteMsg) MarshalJSON() ([]byte, error) {
	type Alias WasmExecuteMsg

	out := Alias(m)
	if out.Funds == nil {
		out.Funds = []Coin{}
	}

	return json.Marshal(out)
}

// WasmMsg is the wasm module variant of a CosmosMsg. Only execute is used here.
type WasmMsg struct {
	Execute *WasmExecuteMsg `json:"execute,omitempty"`
}

// CosmosMsg is a chain level message carried by a multisig proposal.
type CosmosMsg struct {
	Wasm *WasmMsg `json:"wasm,omitempty"`
}

// NewWasmExecuteMsg wraps a contract message for contractAddr with no funds attached.
func NewWasmExecuteMsg(contractAddr string, msg []byte) CosmosMsg {
	return CosmosMsg{
		Wasm: &WasmMsg{
			Execute: &WasmExecuteMsg{
				ContractAddr: contractAddr,
				Msg:          msg,
				Funds:        []Coin{},
			},
		},
	}
}
