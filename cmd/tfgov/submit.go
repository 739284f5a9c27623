package tfgov

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cw-tokenfactory/tfgov"
)

func buildSubmitCmd(flags *rootFlags) *cobra.Command {
	var draftPath string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a draft as a multisig proposal",
		Long:  `Load a JSON or YAML draft and submit all of its actions as one cw3 multisig proposal.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft, err := tfgov.LoadDraft(draftPath)
			if err != nil {
				return err
			}

			submitter, err := loadSubmitter(flags)
			if err != nil {
				return err
			}

			res, err := submitter.Submit(cmd.Context(), draft)

			var notFound *tfgov.ProposalIDNotFoundError
			if errors.As(err, &notFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "Proposal transaction %s succeeded but reported no proposal id\n", notFound.TxHash)
				return err
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Proposal %s created in transaction %s\n%s\n",
				res.ProposalID, res.TxResult.TxHash, res.Path())

			return nil
		},
	}

	cmd.Flags().StringVar(&draftPath, "draft", "", "Path of the draft file")
	_ = cmd.MarkFlagRequired("draft")

	return cmd
}
