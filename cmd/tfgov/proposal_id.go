package tfgov

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cw-tokenfactory/tfgov"
	"github.com/cw-tokenfactory/tfgov/types"
)

func buildProposalIDCmd() *cobra.Command {
	var resultPath string

	cmd := &cobra.Command{
		Use:   "proposal-id",
		Short: "Extract the proposal id from a saved transaction result",
		Long:  `Read the JSON output of "<binary> query tx" and print the id of the proposal it created.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(resultPath)
			if err != nil {
				return err
			}

			var res types.TxResult
			if err = json.Unmarshal(data, &res); err != nil {
				return fmt.Errorf("unable to decode transaction result: %w", err)
			}

			id, ok := res.ProposalID()
			if !ok || id == "" {
				return tfgov.NewProposalIDNotFoundError(res.TxHash)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", id, tfgov.ProposalPath(id))

			return nil
		},
	}

	cmd.Flags().StringVar(&resultPath, "result", "", "Path of the transaction result JSON")
	_ = cmd.MarkFlagRequired("result")

	return cmd
}
