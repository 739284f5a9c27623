package cw3

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCall struct {
	name string
	args []string
}

// fakeRunner replays canned responses keyed by the command kind ("tx" or "query").
type fakeRunner struct {
	calls     []fakeCall
	responses map[string][]fakeResponse
}

type fakeResponse struct {
	out string
	err error
}

func (f *fakeRunner) run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, fakeCall{name: name, args: args})

	queue := f.responses[args[0]]
	if len(queue) == 0 {
		return nil, errors.New("unexpected call: " + strings.Join(args, " "))
	}
	resp := queue[0]
	if len(queue) > 1 {
		f.responses[args[0]] = queue[1:]
	}

	if resp.err != nil {
		return nil, resp.err
	}

	return []byte(resp.out), nil
}

const includedTx = `{
	"height": "120",
	"txhash": "AB12",
	"code": 0,
	"logs": [{"msg_index": 0, "events": [{"type": "wasm", "attributes": [{"key": "proposal_id", "value": "5"}]}]}]
}`

func testCLIConfig() CLIConfig {
	return CLIConfig{
		Binary:         "wasmd",
		ChainID:        "testing",
		Node:           "http://localhost:26657",
		From:           "operator",
		KeyringBackend: "test",
		GasPrices:      "0.025uwasm",
		RetryDelays:    []time.Duration{time.Millisecond, time.Millisecond},
	}
}

func TestCLIBroadcaster_ExecuteContract(t *testing.T) {
	t.Parallel()

	notFound := errors.New("tx (AB12) not found")

	tests := []struct {
		name      string
		responses map[string][]fakeResponse
		wantID    string
		wantErr   string
		wantCalls int
	}{
		{
			name: "included after one retry",
			responses: map[string][]fakeResponse{
				"tx":    {{out: `{"txhash":"AB12","code":0,"raw_log":""}`}},
				"query": {{err: notFound}, {out: includedTx}},
			},
			wantID:    "5",
			wantCalls: 3,
		},
		{
			name: "rejected by the node",
			responses: map[string][]fakeResponse{
				"tx": {{out: `{"txhash":"AB12","code":13,"raw_log":"insufficient fee"}`}},
			},
			wantErr:   `transaction "AB12" failed with code 13: insufficient fee`,
			wantCalls: 1,
		},
		{
			name: "failed in block",
			responses: map[string][]fakeResponse{
				"tx":    {{out: `{"txhash":"AB12","code":0}`}},
				"query": {{out: `{"txhash":"AB12","code":5,"raw_log":"out of gas"}`}},
			},
			wantErr:   `transaction "AB12" failed with code 5: out of gas`,
			wantCalls: 2,
		},
		{
			name: "never included",
			responses: map[string][]fakeResponse{
				"tx":    {{out: `{"txhash":"AB12","code":0}`}},
				"query": {{err: notFound}},
			},
			wantErr:   "transaction AB12 was not confirmed: tx (AB12) not found",
			wantCalls: 4,
		},
		{
			name: "undecodable query response",
			responses: map[string][]fakeResponse{
				"tx":    {{out: `{"txhash":"AB12","code":0}`}},
				"query": {{out: `gas estimate: 1000`}},
			},
			wantErr:   "transaction AB12 was not confirmed: failed to decode transaction AB12: invalid character 'g' looking for beginning of value",
			wantCalls: 2,
		},
		{
			name: "binary failure",
			responses: map[string][]fakeResponse{
				"tx": {{err: errors.New("key operator not found")}},
			},
			wantErr:   "key operator not found",
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			runner := &fakeRunner{responses: tt.responses}
			b := NewCLIBroadcaster(testCLIConfig(), WithCommandRunner(runner.run))

			got, err := b.ExecuteContract(context.Background(), "wasm1multisig", []byte(`{"propose":{}}`))
			assert.Len(t, runner.calls, tt.wantCalls)

			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			id, ok := got.ProposalID()
			assert.True(t, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestCLIBroadcaster_CommandLine(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{responses: map[string][]fakeResponse{
		"tx":    {{out: `{"txhash":"AB12","code":0}`}},
		"query": {{out: includedTx}},
	}}
	b := NewCLIBroadcaster(testCLIConfig(), WithCommandRunner(runner.run))

	_, err := b.ExecuteContract(context.Background(), "wasm1multisig", []byte(`{"propose":{}}`))
	require.NoError(t, err)
	require.Len(t, runner.calls, 2)

	assert.Equal(t, "wasmd", runner.calls[0].name)
	assert.Equal(t, []string{
		"tx", "wasm", "execute", "wasm1multisig", `{"propose":{}}`,
		"-y", "-o", "json", "--broadcast-mode", "sync",
		"--from", "operator",
		"--chain-id", "testing",
		"--node", "http://localhost:26657",
		"--keyring-backend", "test",
		"--gas-prices", "0.025uwasm",
	}, runner.calls[0].args)
	assert.Equal(t, []string{
		"query", "tx", "AB12", "-o", "json", "--node", "http://localhost:26657",
	}, runner.calls[1].args)
}
