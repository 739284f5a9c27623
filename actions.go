package tfgov

import (
	"encoding/json"
	"slices"

	"github.com/cw-tokenfactory/tfgov/types"
)

// ActionList is the ordered list of actions composing a proposal. Actions execute in list order
// once the proposal passes.
//
// The zero value is an empty list ready to use.
type ActionList struct {
	actions []types.Action
}

// NewActionList creates a list holding the given actions in order.
func NewActionList(actions ...types.Action) ActionList {
	return ActionList{actions: slices.Clone(actions)}
}

// Append adds an action to the end of the list.
func (l *ActionList) Append(action types.Action) {
	l.actions = append(l.actions, action)
}

// RemoveAt removes the action at index. Every later action moves down by one position, so
// indexes obtained before the call no longer refer to the same actions.
//
// It returns false and leaves the list unchanged if index is out of range.
func (l *ActionList) RemoveAt(index int) bool {
	if index < 0 || index >= len(l.actions) {
		return false
	}

	l.actions = slices.Delete(l.actions, index, index+1)

	return true
}

// At returns the action at index.
func (l ActionList) At(index int) (types.Action, bool) {
	if index < 0 || index >= len(l.actions) {
		return nil, false
	}

	return l.actions[index], true
}

// Len returns the number of actions in the list.
func (l ActionList) Len() int {
	return len(l.actions)
}

// Actions returns a copy of the actions in insertion order.
func (l ActionList) Actions() []types.Action {
	return slices.Clone(l.actions)
}

// MarshalJSON encodes the list as an array of execute messages.
func (l ActionList) MarshalJSON() ([]byte, error) {
	msgs := make([]types.ExecuteMsg, len(l.actions))
	for i, action := range l.actions {
		msgs[i] = types.ExecuteMsg{Action: action}
	}

	return json.Marshal(msgs)
}

// UnmarshalJSON decodes an array of execute messages.
func (l *ActionList) UnmarshalJSON(data []byte) error {
	var msgs []types.ExecuteMsg
	if err := json.Unmarshal(data, &msgs); err != nil {
		return err
	}

	actions := make([]types.Action, len(msgs))
	for i, msg := range msgs {
		actions[i] = msg.Action
	}
	l.actions = actions

	return nil
}
