package tfgov

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/cw-tokenfactory/tfgov"
	"github.com/cw-tokenfactory/tfgov/internal/tui"
	"github.com/cw-tokenfactory/tfgov/sdk"
)

func buildComposeCmd(flags *rootFlags) *cobra.Command {
	var (
		draftPath string
		logFile   string
	)

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Compose and submit a proposal interactively",
		Long: `Open the interactive composer. Actions are added one at a time through a form per action
kind and the whole list is submitted as one proposal. Logs go to --log-file while the composer
is open.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			submitter, err := loadSubmitter(flags)
			if err != nil {
				return err
			}

			composer := tfgov.NewComposer(submitter)
			if draftPath != "" {
				if err = preload(composer, draftPath); err != nil {
					return err
				}
			}

			level, err := zapcore.ParseLevel(flags.logLevel)
			if err != nil {
				return err
			}
			lggr, err := newFileLogger(level, logFile)
			if err != nil {
				return err
			}
			defer func() { _ = lggr.Sync() }()
			lggr.Infow("composer session started", "session", composer.ID())

			ctx := sdk.WithLogger(cmd.Context(), lggr)
			app := tui.NewApp(composer, tui.WithContext(ctx))

			if _, err = tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
				return err
			}

			if res := app.Result(); res != nil {
				if res.ProposalID == "" {
					return app.Err()
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Proposal %s created\n%s\n", res.ProposalID, res.Path())

				return nil
			}

			if err = app.Err(); err != nil {
				return err
			}

			return errors.New("composer closed without submitting")
		},
	}

	cmd.Flags().StringVar(&draftPath, "draft", "", "Optional draft file to start from")
	cmd.Flags().StringVar(&logFile, "log-file", "tfgov.log", "File receiving logs while the composer is open")

	return cmd
}

func preload(composer *tfgov.Composer, draftPath string) error {
	draft, err := tfgov.LoadDraft(draftPath)
	if err != nil {
		return err
	}

	if err = composer.SetTitle(draft.Title); err != nil {
		return err
	}
	if err = composer.SetDescription(draft.Description); err != nil {
		return err
	}
	for _, action := range draft.Actions.Actions() {
		if err = composer.AddAction(action); err != nil {
			return err
		}
	}

	return nil
}
