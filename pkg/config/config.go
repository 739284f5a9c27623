package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/cw-tokenfactory/tfgov/sdk"
	"github.com/cw-tokenfactory/tfgov/sdk/cw3"
)

var _ sdk.ContractResolver = (*Config)(nil)

type ChainConfig struct {
	Binary         string  `mapstructure:"binary" yaml:"binary" validate:"required"`     // Node daemon binary used to sign and broadcast, e.g. wasmd
	ChainID        string  `mapstructure:"chain_id" yaml:"chain_id" validate:"required"` // Chain id passed to every transaction
	Node           string  `mapstructure:"node" yaml:"node" validate:"omitempty,url"`    // Tendermint RPC endpoint
	KeyringBackend string  `mapstructure:"keyring_backend" yaml:"keyring_backend"`
	Gas            string  `mapstructure:"gas" yaml:"gas"`
	GasPrices      string  `mapstructure:"gas_prices" yaml:"gas_prices"`
	GasAdjustment  float64 `mapstructure:"gas_adjustment" yaml:"gas_adjustment" validate:"gte=0"`
}

type MultisigConfig struct {
	Address string `mapstructure:"address" yaml:"address" validate:"required"` // cw3 multisig that receives the proposals
}

type BroadcastConfig struct {
	RetryDelays []time.Duration `mapstructure:"retry_delays" yaml:"retry_delays"` // Waits between transaction lookups after broadcasting
}

type Config struct {
	Chain     ChainConfig       `mapstructure:"chain" yaml:"chain"`
	From      string            `mapstructure:"from" yaml:"from" validate:"required"` // Keyring key that signs the proposal transaction
	Multisig  MultisigConfig    `mapstructure:"multisig" yaml:"multisig"`
	Contracts map[string]string `mapstructure:"contracts" yaml:"contracts"` // Contract addresses by logical name
	Broadcast BroadcastConfig   `mapstructure:"broadcast" yaml:"broadcast"`
}

// ContractNotFoundError is returned when no address is configured for a contract name.
type ContractNotFoundError struct {
	Name string
}

// NewContractNotFoundError creates a new ContractNotFoundError.
func NewContractNotFoundError(name string) *ContractNotFoundError {
	return &ContractNotFoundError{Name: name}
}

func (e *ContractNotFoundError) Error() string {
	return fmt.Sprintf("no address configured for contract %q", e.Name)
}

// ContractAddress implements sdk.ContractResolver. Names are case insensitive.
func (c *Config) ContractAddress(name string) (string, error) {
	addr, ok := c.Contracts[strings.ToLower(name)]
	if !ok || addr == "" {
		return "", NewContractNotFoundError(name)
	}

	return addr, nil
}

// Validate checks that the config holds everything needed to submit a proposal.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// CLIConfig returns the broadcaster settings of the config.
func (c *Config) CLIConfig() cw3.CLIConfig {
	var gasAdjustment string
	if c.Chain.GasAdjustment > 0 {
		gasAdjustment = cast.ToString(c.Chain.GasAdjustment)
	}

	return cw3.CLIConfig{
		Binary:         c.Chain.Binary,
		ChainID:        c.Chain.ChainID,
		Node:           c.Chain.Node,
		From:           c.From,
		KeyringBackend: c.Chain.KeyringBackend,
		Gas:            c.Chain.Gas,
		GasPrices:      c.Chain.GasPrices,
		GasAdjustment:  gasAdjustment,
		RetryDelays:    slices.Clone(c.Broadcast.RetryDelays),
	}
}

// LoadDotEnv loads environment variables from the given dotenv files. Files that do not exist
// are skipped and variables already set in the environment are kept.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	return nil
}

// Load loads the config from the file path, falling back to env vars if the file does not exist.
// If the file exists, any env vars that are set will override the values loaded from the file.
func Load(filePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filePath)
	v.SetDefault("chain.binary", "wasmd")
	v.SetDefault("chain.keyring_backend", "os")
	v.SetDefault("chain.gas", "auto")

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	lowered := make(map[string]string, len(cfg.Contracts))
	for name, addr := range cfg.Contracts {
		lowered[strings.ToLower(name)] = addr
	}
	cfg.Contracts = lowered

	return cfg, nil
}

// envBindings maps config keys to the environment variables that can provide them. The first
// variable that is set wins.
var envBindings = map[string][]string{
	"chain.binary":                  {"TFGOV_CHAIN_BINARY"},
	"chain.chain_id":                {"TFGOV_CHAIN_ID"},
	"chain.node":                    {"TFGOV_CHAIN_NODE"},
	"chain.keyring_backend":         {"TFGOV_KEYRING_BACKEND"},
	"chain.gas":                     {"TFGOV_GAS"},
	"chain.gas_prices":              {"TFGOV_GAS_PRICES"},
	"chain.gas_adjustment":          {"TFGOV_GAS_ADJUSTMENT"},
	"from":                          {"TFGOV_FROM"},
	"multisig.address":              {"TFGOV_MULTISIG_ADDRESS"},
	"contracts.tokenfactory-issuer": {"TFGOV_ISSUER_ADDRESS", "TOKENFACTORY_ISSUER_ADDRESS"},
	"broadcast.retry_delays":        {"TFGOV_BROADCAST_RETRY_DELAYS"},
}

func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(envs, 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
