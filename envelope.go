package tfgov

import (
	"encoding/json"

	"github.com/gowebpki/jcs"

	"github.com/cw-tokenfactory/tfgov/types"
)

// EncodeAction returns the canonical JSON execute message for an action. Keys are sorted and
// whitespace removed (RFC 8785), so equal actions always encode to equal bytes. The key order
// of the bytes therefore differs from the display order of Params, e.g. a mint encodes as
// {"mint":{"amount":"100","to_address":"addr1"}}. The contract accepts any key order.
func EncodeAction(action types.Action) ([]byte, error) {
	raw, err := json.Marshal(types.ExecuteMsg{Action: action})
	if err != nil {
		return nil, err
	}

	return jcs.Transform(raw)
}

// BuildMessages wraps every action into a wasm execute message targeting contractAddr. The
// result has one message per action in the same order. No funds are attached.
func BuildMessages(actions []types.Action, contractAddr string) ([]types.CosmosMsg, error) {
	msgs := make([]types.CosmosMsg, 0, len(actions))
	for i, action := range actions {
		payload, err := EncodeAction(action)
		if err != nil {
			return nil, NewEncodeActionError(i, err)
		}

		msgs = append(msgs, types.NewWasmExecuteMsg(contractAddr, payload))
	}

	return msgs, nil
}

// DecodeMessage extracts the action carried by a wasm execute message.
func DecodeMessage(msg types.CosmosMsg) (types.Action, error) {
	if msg.Wasm == nil || msg.Wasm.Execute == nil {
		return nil, NewInvalidMessageError("not a wasm execute message")
	}

	var exec types.ExecuteMsg
	if err := json.Unmarshal(msg.Wasm.Execute.Msg, &exec); err != nil {
		return nil, err
	}

	return exec.Action, nil
}
