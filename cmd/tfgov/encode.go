package tfgov

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cw-tokenfactory/tfgov"
	"github.com/cw-tokenfactory/tfgov/pkg/config"
)

func buildEncodeCmd(flags *rootFlags) *cobra.Command {
	var (
		draftPath    string
		contractAddr string
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Print the messages a draft would be proposed with",
		Long: `Wrap every action of a draft into a wasm execute message and print them without submitting.
The contract address is read from the config unless --contract is set.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft, err := tfgov.LoadDraft(draftPath)
			if err != nil {
				return err
			}

			if contractAddr == "" {
				cfg, err := config.Load(flags.configPath)
				if err != nil {
					return fmt.Errorf("unable to load config %s: %w", flags.configPath, err)
				}
				if contractAddr, err = cfg.ContractAddress(tfgov.TokenfactoryIssuerContract); err != nil {
					return err
				}
			}

			msgs, err := tfgov.BuildMessages(draft.Actions.Actions(), contractAddr)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(msgs)
		},
	}

	cmd.Flags().StringVar(&draftPath, "draft", "", "Path of the draft file")
	cmd.Flags().StringVar(&contractAddr, "contract", "", "Address of the tokenfactory-issuer contract")
	_ = cmd.MarkFlagRequired("draft")

	return cmd
}
