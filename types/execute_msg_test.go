package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ExecuteMsg_MarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    ExecuteMsg
		want    string
		wantErr error
	}{
		{
			name: "mint",
			give: ExecuteMsg{Action: Mint{ToAddress: "addr1", Amount: "100"}},
			want: `{"mint":{"to_address":"addr1","amount":"100"}}`,
		},
		{
			name: "blacklist",
			give: ExecuteMsg{Action: Blacklist{Address: "addr2", Status: true}},
			want: `{"blacklist":{"address":"addr2","status":true}}`,
		},
		{
			name: "freeze",
			give: ExecuteMsg{Action: Freeze{Status: false}},
			want: `{"freeze":{"status":false}}`,
		},
		{
			name:    "nil action",
			give:    ExecuteMsg{},
			wantErr: ErrNilAction,
		},
		{
			name:    "typed nil pointer",
			give:    ExecuteMsg{Action: (*Mint)(nil)},
			wantErr: &InvalidExecuteMsgError{},
		},
		{
			name:    "pointer action",
			give:    ExecuteMsg{Action: &Freeze{Status: true}},
			wantErr: &InvalidExecuteMsgError{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := json.Marshal(tt.give)
			if tt.wantErr != nil {
				var invalid *InvalidExecuteMsgError
				if errors.As(tt.wantErr, &invalid) {
					require.ErrorAs(t, err, &invalid)
				} else {
					require.ErrorIs(t, err, tt.wantErr)
				}

				return
			}

			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func Test_ExecuteMsg_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    Action
		wantErr string
	}{
		{
			name: "set_minter",
			give: `{"set_minter":{"address":"osmo1m","allowance":"10"}}`,
			want: SetMinter{Address: "osmo1m", Allowance: "10"},
		},
		{
			name: "burn",
			give: `{"burn":{"from_address":"osmo1f","amount":"3"}}`,
			want: Burn{FromAddress: "osmo1f", Amount: "3"},
		},
		{
			name: "set_freezer",
			give: `{"set_freezer":{"address":"osmo1z","status":true}}`,
			want: SetFreezer{Address: "osmo1z", Status: true},
		},
		{
			name:    "no keys",
			give:    `{}`,
			wantErr: "invalid execute msg: expected exactly one action kind, got 0",
		},
		{
			name:    "two keys",
			give:    `{"freeze":{"status":true},"mint":{"to_address":"a","amount":"1"}}`,
			wantErr: "invalid execute msg: expected exactly one action kind, got 2",
		},
		{
			name:    "unknown kind",
			give:    `{"change_contract_owner":{"new_owner":"a"}}`,
			wantErr: `unknown action kind: "change_contract_owner"`,
		},
		{
			name:    "parameters of another kind",
			give:    `{"freeze":{"status":true,"address":"osmo1z"}}`,
			wantErr: `invalid execute msg: invalid freeze parameters: json: unknown field "address"`,
		},
		{
			name:    "not an object",
			give:    `[]`,
			wantErr: "json: cannot unmarshal array into Go value of type map[string]json.RawMessage",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got ExecuteMsg
			err := json.Unmarshal([]byte(tt.give), &got)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Action)
		})
	}
}

func Test_DecodeAction_EveryKind(t *testing.T) {
	t.Parallel()

	actions := []Action{
		SetMinter{Address: "a", Allowance: "1"},
		Mint{ToAddress: "b", Amount: "2"},
		SetBurner{Address: "c", Allowance: "3"},
		Burn{FromAddress: "d", Amount: "4"},
		SetBlacklister{Address: "e", Status: true},
		Blacklist{Address: "f", Status: true},
		SetFreezer{Address: "g", Status: true},
		Freeze{Status: true},
	}

	for _, action := range actions {
		payload, err := json.Marshal(action)
		require.NoError(t, err)

		got, err := DecodeAction(action.Kind(), payload)
		require.NoError(t, err)
		assert.Equal(t, action, got)
	}
}

func Test_CheckAction(t *testing.T) {
	t.Parallel()

	for _, kind := range ActionKinds() {
		action, err := DecodeAction(kind, []byte("{}"))
		require.NoError(t, err)
		require.NoError(t, CheckAction(action), kind)
	}

	require.ErrorIs(t, CheckAction(nil), ErrNilAction)

	var invalid *InvalidExecuteMsgError
	require.ErrorAs(t, CheckAction((*Burn)(nil)), &invalid)
	assert.Equal(t, "invalid execute msg: unsupported action type *types.Burn", invalid.Error())
	require.ErrorAs(t, CheckAction(&Mint{ToAddress: "addr1", Amount: "1"}), &invalid)
}
