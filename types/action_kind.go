package types //nolint:revive,nolintlint // allow pkg name 'types'

import "slices"

// ActionKind identifies one of the execute messages accepted by the tokenfactory-issuer contract.
type ActionKind string

const (
	// KindSetMinter grants or updates a mint allowance for an address.
	KindSetMinter ActionKind = "set_minter"
	// KindMint mints tokens to an address.
	KindMint ActionKind = "mint"
	// KindSetBurner grants or updates a burn allowance for an address.
	KindSetBurner ActionKind = "set_burner"
	// KindBurn burns tokens from an address.
	KindBurn ActionKind = "burn"
	// KindSetBlacklister grants or revokes the blacklister role.
	KindSetBlacklister ActionKind = "set_blacklister"
	// KindBlacklist adds or removes an address from the blacklist.
	KindBlacklist ActionKind = "blacklist"
	// KindSetFreezer grants or revokes the freezer role.
	KindSetFreezer ActionKind = "set_freezer"
	// KindFreeze freezes or unfreezes all token transfers.
	KindFreeze ActionKind = "freeze"
)

// actionKinds is the display order of every supported kind.
var actionKinds = []ActionKind{
	KindSetMinter,
	KindMint,
	KindSetBurner,
	KindBurn,
	KindSetBlacklister,
	KindBlacklist,
	KindSetFreezer,
	KindFreeze,
}

// ActionKinds returns all supported action kinds in display order.
func ActionKinds() []ActionKind {
	return slices.Clone(actionKinds)
}

// ParseActionKind converts a string to an ActionKind.
func ParseActionKind(s string) (ActionKind, error) {
	kind := ActionKind(s)
	if !kind.Valid() {
		return "", NewUnknownActionKindError(s)
	}

	return kind, nil
}

// Valid reports whether k is one of the supported kinds.
func (k ActionKind) Valid() bool {
	return slices.Contains(actionKinds, k)
}

func (k ActionKind) String() string {
	return string(k)
}
