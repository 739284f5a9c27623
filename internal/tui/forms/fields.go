package forms

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"

	"github.com/cw-tokenfactory/tfgov/types"
)

type fieldKind int

const (
	fieldAddress fieldKind = iota
	fieldAmount
	fieldStatus
)

type fieldSpec struct {
	name        string
	kind        fieldKind
	placeholder string
	initial     string
}

func addressField(name string) fieldSpec {
	return fieldSpec{name: name, kind: fieldAddress, placeholder: "osmo1..."}
}

func amountField(name string) fieldSpec {
	return fieldSpec{name: name, kind: fieldAmount, placeholder: "1000000"}
}

func statusField() fieldSpec {
	return fieldSpec{name: "status", kind: fieldStatus, placeholder: "true or false", initial: "false"}
}

var validate = validator.New()

// values holds the parsed input of a form, keyed by parameter name.
type values struct {
	strings map[string]string
	amounts map[string]types.Uint128
	bools   map[string]bool
}

func (s fieldSpec) parse(raw string, into *values) error {
	raw = strings.TrimSpace(raw)

	switch s.kind {
	case fieldAddress:
		if err := validate.Var(raw, "required,printascii"); err != nil {
			return fmt.Errorf("%s is required", s.name)
		}
		into.strings[s.name] = raw
	case fieldAmount:
		if err := validate.Var(raw, "required,number"); err != nil {
			return fmt.Errorf("%s must be a whole number", s.name)
		}
		amount := types.Uint128(raw)
		if err := amount.Validate(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		into.amounts[s.name] = amount
	case fieldStatus:
		status, err := cast.ToBoolE(raw)
		if err != nil {
			return fmt.Errorf("%s must be true or false", s.name)
		}
		into.bools[s.name] = status
	}

	return nil
}

// buildAction assembles the action of the given kind from parsed form values.
func buildAction(kind types.ActionKind, v values) types.Action {
	switch kind {
	case types.KindSetMinter:
		return types.SetMinter{Address: v.strings["address"], Allowance: v.amounts["allowance"]}
	case types.KindMint:
		return types.Mint{ToAddress: v.strings["to_address"], Amount: v.amounts["amount"]}
	case types.KindSetBurner:
		return types.SetBurner{Address: v.strings["address"], Allowance: v.amounts["allowance"]}
	case types.KindBurn:
		return types.Burn{FromAddress: v.strings["from_address"], Amount: v.amounts["amount"]}
	case types.KindSetBlacklister:
		return types.SetBlacklister{Address: v.strings["address"], Status: v.bools["status"]}
	case types.KindBlacklist:
		return types.Blacklist{Address: v.strings["address"], Status: v.bools["status"]}
	case types.KindSetFreezer:
		return types.SetFreezer{Address: v.strings["address"], Status: v.bools["status"]}
	case types.KindFreeze:
		return types.Freeze{Status: v.bools["status"]}
	}

	return nil
}
