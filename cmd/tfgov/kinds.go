package tfgov

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/cw-tokenfactory/tfgov/types"
)

func buildKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the supported action kinds and their parameters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("KIND", "PARAMETERS")

			for _, kind := range types.ActionKinds() {
				// An empty payload decodes to the zero action, which is enough to list names.
				action, err := types.DecodeAction(kind, []byte("{}"))
				if err != nil {
					return err
				}

				params := action.Params()
				names := make([]string, len(params))
				for i, p := range params {
					names[i] = p.Name
				}
				t.Row(string(kind), strings.Join(names, ", "))
			}

			_, err := cmd.OutOrStdout().Write([]byte(t.Render() + "\n"))

			return err
		},
	}
}
