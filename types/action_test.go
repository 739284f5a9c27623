package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ActionKinds(t *testing.T) {
	t.Parallel()

	kinds := ActionKinds()
	assert.Equal(t, []ActionKind{
		KindSetMinter, KindMint, KindSetBurner, KindBurn,
		KindSetBlacklister, KindBlacklist, KindSetFreezer, KindFreeze,
	}, kinds)

	// Mutating the returned slice must not affect later calls.
	kinds[0] = "tampered"
	assert.Equal(t, KindSetMinter, ActionKinds()[0])
}

func Test_ParseActionKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    ActionKind
		wantErr string
	}{
		{name: "mint", give: "mint", want: KindMint},
		{name: "set_blacklister", give: "set_blacklister", want: KindSetBlacklister},
		{name: "empty", give: "", wantErr: `unknown action kind: ""`},
		{name: "unknown", give: "change_contract_owner", wantErr: `unknown action kind: "change_contract_owner"`},
		{name: "wrong case", give: "Mint", wantErr: `unknown action kind: "Mint"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseActionKind(tt.give)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_Summarize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		give       Action
		wantKind   ActionKind
		wantParams []Param
	}{
		{
			name:     "set_minter",
			give:     SetMinter{Address: "osmo1minter", Allowance: "1000"},
			wantKind: KindSetMinter,
			wantParams: []Param{
				{Name: "address", Value: "osmo1minter"},
				{Name: "allowance", Value: "1000"},
			},
		},
		{
			name:     "mint",
			give:     Mint{ToAddress: "osmo1to", Amount: "100"},
			wantKind: KindMint,
			wantParams: []Param{
				{Name: "to_address", Value: "osmo1to"},
				{Name: "amount", Value: "100"},
			},
		},
		{
			name:     "set_burner",
			give:     SetBurner{Address: "osmo1burner", Allowance: "5"},
			wantKind: KindSetBurner,
			wantParams: []Param{
				{Name: "address", Value: "osmo1burner"},
				{Name: "allowance", Value: "5"},
			},
		},
		{
			name:     "burn",
			give:     Burn{FromAddress: "osmo1from", Amount: "7"},
			wantKind: KindBurn,
			wantParams: []Param{
				{Name: "from_address", Value: "osmo1from"},
				{Name: "amount", Value: "7"},
			},
		},
		{
			name:     "set_blacklister",
			give:     SetBlacklister{Address: "osmo1bl", Status: true},
			wantKind: KindSetBlacklister,
			wantParams: []Param{
				{Name: "address", Value: "osmo1bl"},
				{Name: "status", Value: "true"},
			},
		},
		{
			name:     "blacklist",
			give:     Blacklist{Address: "osmo1bad", Status: false},
			wantKind: KindBlacklist,
			wantParams: []Param{
				{Name: "address", Value: "osmo1bad"},
				{Name: "status", Value: "false"},
			},
		},
		{
			name:     "set_freezer",
			give:     SetFreezer{Address: "osmo1fr", Status: true},
			wantKind: KindSetFreezer,
			wantParams: []Param{
				{Name: "address", Value: "osmo1fr"},
				{Name: "status", Value: "true"},
			},
		},
		{
			name:       "freeze",
			give:       Freeze{Status: true},
			wantKind:   KindFreeze,
			wantParams: []Param{{Name: "status", Value: "true"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			kind, params := Summarize(tt.give)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantParams, params)
			assert.True(t, kind.Valid())
		})
	}
}

func Test_Uint128_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    Uint128
		wantErr string
	}{
		{name: "zero", give: "0"},
		{name: "small", give: "100"},
		{name: "max", give: "340282366920938463463374607431768211455"},
		{name: "overflow", give: "340282366920938463463374607431768211456", wantErr: "value does not fit in an unsigned 128 bit integer"},
		{name: "empty", give: "", wantErr: "empty amount"},
		{name: "negative", give: "-1", wantErr: "amount must only contain digits"},
		{name: "decimal", give: "1.5", wantErr: "amount must only contain digits"},
		{name: "plus sign", give: "+1", wantErr: "amount must only contain digits"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.give.Validate()
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
