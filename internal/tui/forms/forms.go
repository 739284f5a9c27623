// Package forms holds the input forms used to compose one action of each kind.
package forms

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cw-tokenfactory/tfgov/types"
)

// PlaceholderText is shown in place of a form while no action kind is selected.
const PlaceholderText = "Please select action type to add."

// SubmitFunc receives the action entered in a form and returns the command to run next.
type SubmitFunc func(types.Action) tea.Cmd

// CancelMsg is emitted when the user leaves a form without submitting it.
type CancelMsg struct{}

// New returns the form for the given action kind. It returns the placeholder and false when the
// kind is empty or unknown. A new kind needs its own case here; the switch is not checked for
// exhaustiveness by the compiler.
func New(kind types.ActionKind, onSubmit SubmitFunc) (tea.Model, bool) {
	switch kind {
	case types.KindSetMinter:
		return newForm(kind, onSubmit, addressField("address"), amountField("allowance")), true
	case types.KindMint:
		return newForm(kind, onSubmit, addressField("to_address"), amountField("amount")), true
	case types.KindSetBurner:
		return newForm(kind, onSubmit, addressField("address"), amountField("allowance")), true
	case types.KindBurn:
		return newForm(kind, onSubmit, addressField("from_address"), amountField("amount")), true
	case types.KindSetBlacklister:
		return newForm(kind, onSubmit, addressField("address"), statusField()), true
	case types.KindBlacklist:
		return newForm(kind, onSubmit, addressField("address"), statusField()), true
	case types.KindSetFreezer:
		return newForm(kind, onSubmit, addressField("address"), statusField()), true
	case types.KindFreeze:
		return newForm(kind, onSubmit, statusField()), true
	}

	return Placeholder{}, false
}

// Placeholder is the neutral view shown when no form applies.
type Placeholder struct{}

func (Placeholder) Init() tea.Cmd { return nil }

func (p Placeholder) Update(tea.Msg) (tea.Model, tea.Cmd) { return p, nil }

func (Placeholder) View() string { return PlaceholderText }
