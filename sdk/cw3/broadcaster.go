package cw3

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/cw-tokenfactory/tfgov/sdk"
	"github.com/cw-tokenfactory/tfgov/types"
)

var _ Broadcaster = (*CLIBroadcaster)(nil)

// CommandRunner runs an external command and returns its standard output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs the command with os/exec. The standard error of a failed command is part of
// the returned error.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w: %s", name, args[0], err, strings.TrimSpace(stderr.String()))
	}

	return out, nil
}

// CLIConfig holds the node daemon binary and the transaction flags used by CLIBroadcaster.
type CLIConfig struct {
	Binary         string
	ChainID        string
	Node           string
	From           string
	KeyringBackend string
	Gas            string
	GasPrices      string
	GasAdjustment  string
	// RetryDelays are the waits between lookups of a broadcast transaction.
	RetryDelays []time.Duration
}

// CLIBroadcaster broadcasts transactions with a Cosmos SDK node daemon binary such as wasmd or
// osmosisd, using a key from its keyring.
type CLIBroadcaster struct {
	cfg CLIConfig
	run CommandRunner
}

// CLIBroadcasterOption configures a CLIBroadcaster.
type CLIBroadcasterOption func(*CLIBroadcaster)

// WithCommandRunner replaces the runner used to invoke the binary.
func WithCommandRunner(run CommandRunner) CLIBroadcasterOption {
	return func(b *CLIBroadcaster) {
		b.run = run
	}
}

// NewCLIBroadcaster creates a CLIBroadcaster.
func NewCLIBroadcaster(cfg CLIConfig, opts ...CLIBroadcasterOption) *CLIBroadcaster {
	b := &CLIBroadcaster{cfg: cfg, run: ExecRunner}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// ExecuteContract broadcasts a wasm execute transaction in sync mode and waits until the
// transaction is found in a block.
func (b *CLIBroadcaster) ExecuteContract(ctx context.Context, contract string, msg []byte) (*types.TxResult, error) {
	lggr := sdk.LoggerFrom(ctx)

	args := append([]string{"tx", "wasm", "execute", contract, string(msg)}, b.txFlags()...)
	out, err := b.run(ctx, b.cfg.Binary, args...)
	if err != nil {
		return nil, err
	}

	var broadcast types.TxResult
	if err = json.Unmarshal(out, &broadcast); err != nil {
		return nil, fmt.Errorf("failed to decode broadcast response: %w", err)
	}
	if !broadcast.Succeeded() {
		return nil, NewTxFailedError(broadcast.TxHash, broadcast.Code, broadcast.RawLog)
	}

	lggr.Infof("transaction %s broadcast, waiting for inclusion", broadcast.TxHash)

	res, err := Retry(ctx, b.cfg.RetryDelays, func(ctx context.Context) (*types.TxResult, error) {
		return b.queryTx(ctx, broadcast.TxHash)
	}, retry.OnRetry(func(n uint, err error) {
		lggr.Debugf("transaction %s not found yet (attempt %d): %v", broadcast.TxHash, n+1, err)
	}))
	if err != nil {
		return nil, fmt.Errorf("transaction %s was not confirmed: %w", broadcast.TxHash, err)
	}
	if !res.Succeeded() {
		return nil, NewTxFailedError(res.TxHash, res.Code, res.RawLog)
	}

	lggr.Infof("transaction %s included at height %s", res.TxHash, res.Height)

	return res, nil
}

func (b *CLIBroadcaster) queryTx(ctx context.Context, hash string) (*types.TxResult, error) {
	args := []string{"query", "tx", hash, "-o", "json"}
	if b.cfg.Node != "" {
		args = append(args, "--node", b.cfg.Node)
	}

	out, err := b.run(ctx, b.cfg.Binary, args...)
	if err != nil {
		return nil, err
	}

	var res types.TxResult
	if err = json.Unmarshal(out, &res); err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("failed to decode transaction %s: %w", hash, err))
	}
	if res.TxHash == "" {
		return nil, errors.New("empty transaction response")
	}

	return &res, nil
}

func (b *CLIBroadcaster) txFlags() []string {
	flags := []string{"-y", "-o", "json", "--broadcast-mode", "sync"}

	add := func(name, value string) {
		if value != "" {
			flags = append(flags, name, value)
		}
	}
	add("--from", b.cfg.From)
	add("--chain-id", b.cfg.ChainID)
	add("--node", b.cfg.Node)
	add("--keyring-backend", b.cfg.KeyringBackend)
	add("--gas", b.cfg.Gas)
	add("--gas-prices", b.cfg.GasPrices)
	add("--gas-adjustment", b.cfg.GasAdjustment)

	return flags
}
