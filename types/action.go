package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"
	"math/big"
	"strconv"
)

// Param is a single named parameter of an action, formatted for display.
type Param struct {
	Name  string
	Value string
}

// Action is one administrative operation against the tokenfactory-issuer contract.
//
// The set of implementations is closed: SetMinter, Mint, SetBurner, Burn, SetBlacklister,
// Blacklist, SetFreezer and Freeze, used as values. Each implementation carries only the
// parameters of its own kind. CheckAction rejects anything else, including pointers to them.
type Action interface {
	// Kind returns the execute message name of the action.
	Kind() ActionKind
	// Params returns the parameters of the action in display order.
	Params() []Param

	isAction()
}

// Summarize returns the kind and the ordered parameters of an action.
func Summarize(a Action) (ActionKind, []Param) {
	return a.Kind(), a.Params()
}

// Uint128 is a base 10 unsigned 128 bit integer, encoded as a JSON string.
type Uint128 string

var errUint128Range = errors.New("value does not fit in an unsigned 128 bit integer")

// Validate checks that u is a plain decimal number within the uint128 range.
func (u Uint128) Validate() error {
	s := string(u)
	if s == "" {
		return errors.New("empty amount")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return errors.New("amount must only contain digits")
		}
	}

	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.BitLen() > 128 {
		return errUint128Range
	}

	return nil
}

func (u Uint128) String() string {
	return string(u)
}

// SetMinter grants address an allowance of tokens it may mint.
type SetMinter struct {
	Address   string  `json:"address"`
	Allowance Uint128 `json:"allowance"`
}

// Kind returns KindSetMinter.
func (SetMinter) Kind() ActionKind { return KindSetMinter }

// Params returns the parameters in display order.
func (a SetMinter) Params() []Param {
	return []Param{
		{Name: "address", Value: a.Address},
		{Name: "allowance", Value: a.Allowance.String()},
	}
}

func (SetMinter) isAction() {}

// Mint mints amount tokens to to_address.
type Mint struct {
	ToAddress string  `json:"to_address"`
	Amount    Uint128 `json:"amount"`
}

// Kind returns KindMint.
func (Mint) Kind() ActionKind { return KindMint }

// Params returns the parameters in display order.
func (a Mint) Params() []Param {
	return []Param{
		{Name: "to_address", Value: a.ToAddress},
		{Name: "amount", Value: a.Amount.String()},
	}
}

func (Mint) isAction() {}

// SetBurner grants address an allowance of tokens it may burn.
type SetBurner struct {
	Address   string  `json:"address"`
	Allowance Uint128 `json:"allowance"`
}

// Kind returns KindSetBurner.
func (SetBurner) Kind() ActionKind { return KindSetBurner }

// Params returns the parameters in display order.
func (a SetBurner) Params() []Param {
	return []Param{
		{Name: "address", Value: a.Address},
		{Name: "allowance", Value: a.Allowance.String()},
	}
}

func (SetBurner) isAction() {}

// Burn burns amount tokens held by from_address.
type Burn struct {
	FromAddress string  `json:"from_address"`
	Amount      Uint128 `json:"amount"`
}

// Kind returns KindBurn.
func (Burn) Kind() ActionKind { return KindBurn }

// Params returns the parameters in display order.
func (a Burn) Params() []Param {
	return []Param{
		{Name: "from_address", Value: a.FromAddress},
		{Name: "amount", Value: a.Amount.String()},
	}
}

func (Burn) isAction() {}

// SetBlacklister grants or revokes the blacklister role of address.
type SetBlacklister struct {
	Address string `json:"address"`
	Status  bool   `json:"status"`
}

// Kind returns KindSetBlacklister.
func (SetBlacklister) Kind() ActionKind { return KindSetBlacklister }

// Params returns the parameters in display order.
func (a SetBlacklister) Params() []Param {
	return []Param{
		{Name: "address", Value: a.Address},
		{Name: "status", Value: strconv.FormatBool(a.Status)},
	}
}

func (SetBlacklister) isAction() {}

// Blacklist adds address to or removes it from the blacklist.
type Blacklist struct {
	Address string `json:"address"`
	Status  bool   `json:"status"`
}

// Kind returns KindBlacklist.
func (Blacklist) Kind() ActionKind { return KindBlacklist }

// Params returns the parameters in display order.
func (a Blacklist) Params() []Param {
	return []Param{
		{Name: "address", Value: a.Address},
		{Name: "status", Value: strconv.FormatBool(a.Status)},
	}
}

func (Blacklist) isAction() {}

// SetFreezer grants or revokes the freezer role of address.
type SetFreezer struct {
	Address string `json:"address"`
	Status  bool   `json:"status"`
}

// Kind returns KindSetFreezer.
func (SetFreezer) Kind() ActionKind { return KindSetFreezer }

// Params returns the parameters in display order.
func (a SetFreezer) Params() []Param {
	return []Param{
		{Name: "address", Value: a.Address},
		{Name: "status", Value: strconv.FormatBool(a.Status)},
	}
}

func (SetFreezer) isAction() {}

// Freeze freezes or unfreezes all token transfers.
type Freeze struct {
	Status bool `json:"status"`
}

// Kind returns KindFreeze.
func (Freeze) Kind() ActionKind { return KindFreeze }

// Params returns the parameters in display order.
func (a Freeze) Params() []Param {
	return []Param{
		{Name: "status", Value: strconv.FormatBool(a.Status)},
	}
}

func (Freeze) isAction() {}
