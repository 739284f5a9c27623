package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ExecuteMsg is the JSON form of an Action as the tokenfactory-issuer contract expects it: an
// object with exactly one key, the action kind, whose value holds the kind's parameters.
//
//	{"mint":{"to_address":"osmo1...","amount":"100"}}
type ExecuteMsg struct {
	Action Action
}

// CheckAction reports whether a is one of the eight action values. Pointers to actions satisfy
// the Action interface too but are rejected, since a nil pointer cannot report its kind and a
// decoded action is always a value.
func CheckAction(a Action) error {
	switch a.(type) {
	case SetMinter, Mint, SetBurner, Burn, SetBlacklister, Blacklist, SetFreezer, Freeze:
		return nil
	case nil:
		return ErrNilAction
	default:
		return NewInvalidExecuteMsgError(fmt.Sprintf("unsupported action type %T", a))
	}
}

// MarshalJSON encodes the wrapped action as a single key object.
func (m ExecuteMsg) MarshalJSON() ([]byte, error) {
	if err := CheckAction(m.Action); err != nil {
		return nil, err
	}

	return json.Marshal(map[ActionKind]Action{
		m.Action.Kind(): m.Action,
	})
}

// UnmarshalJSON decodes a single key object into the matching Action.
func (m *ExecuteMsg) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if len(raw) != 1 {
		return NewInvalidExecuteMsgError(fmt.Sprintf("expected exactly one action kind, got %d", len(raw)))
	}

	for key, payload := range raw {
		action, err := DecodeAction(ActionKind(key), payload)
		if err != nil {
			return err
		}
		m.Action = action
	}

	return nil
}

// DecodeAction decodes the parameter object of the given kind. Fields that do not belong to the
// kind are rejected.
func DecodeAction(kind ActionKind, payload []byte) (Action, error) {
	switch kind {
	case KindSetMinter:
		return decodePayload[SetMinter](kind, payload)
	case KindMint:
		return decodePayload[Mint](kind, payload)
	case KindSetBurner:
		return decodePayload[SetBurner](kind, payload)
	case KindBurn:
		return decodePayload[Burn](kind, payload)
	case KindSetBlacklister:
		return decodePayload[SetBlacklister](kind, payload)
	case KindBlacklist:
		return decodePayload[Blacklist](kind, payload)
	case KindSetFreezer:
		return decodePayload[SetFreezer](kind, payload)
	case KindFreeze:
		return decodePayload[Freeze](kind, payload)
	}

	return nil, NewUnknownActionKindError(string(kind))
}

func decodePayload[T Action](kind ActionKind, payload []byte) (Action, error) {
	var out T

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return nil, NewInvalidExecuteMsgError(fmt.Sprintf("invalid %s parameters: %s", kind, err))
	}

	return out, nil
}
