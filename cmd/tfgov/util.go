package tfgov

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cw-tokenfactory/tfgov"
	"github.com/cw-tokenfactory/tfgov/pkg/config"
	"github.com/cw-tokenfactory/tfgov/sdk"
	"github.com/cw-tokenfactory/tfgov/sdk/cw3"
)

// NewCLILogger returns a human readable logger writing to stderr.
func NewCLILogger(level zapcore.Level) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level.SetLevel(level)
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	lggr, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return lggr.Sugar(), nil
}

// newFileLogger returns a logger writing JSON lines to path.
func newFileLogger(level zapcore.Level, path string) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level.SetLevel(level)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	lggr, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return lggr.Sugar(), nil
}

// newProposer builds the proposal transport from the config. Tests replace it.
var newProposer = func(cfg *config.Config) sdk.Proposer {
	broadcaster := cw3.NewCLIBroadcaster(cfg.CLIConfig())

	return cw3.NewProposer(cfg.Multisig.Address, broadcaster)
}

func loadSubmitter(flags *rootFlags) (*tfgov.Submitter, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("unable to load config %s: %w", flags.configPath, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return tfgov.NewSubmitter(newProposer(cfg), cfg), nil
}
