package tfgov

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/cw-tokenfactory/tfgov/pkg/config"
	"github.com/cw-tokenfactory/tfgov/sdk"
)

type rootFlags struct {
	configPath string
	envFile    string
	logLevel   string
}

func BuildTfgovCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := cobra.Command{
		Use:           "tfgov",
		Short:         "Compose and submit tokenfactory-issuer governance proposals",
		Long:          `Compose tokenfactory-issuer admin actions into a single cw3 multisig proposal and submit it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(flags.envFile); err != nil {
				return err
			}

			level, err := zapcore.ParseLevel(flags.logLevel)
			if err != nil {
				return err
			}

			lggr, err := NewCLILogger(level)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(sdk.WithLogger(ctx, lggr))

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "tfgov.yaml", "Path of the config file")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "Dotenv file loaded before reading the config")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(buildComposeCmd(flags))
	cmd.AddCommand(buildSubmitCmd(flags))
	cmd.AddCommand(buildEncodeCmd(flags))
	cmd.AddCommand(buildKindsCmd())
	cmd.AddCommand(buildProposalIDCmd())

	return &cmd
}
