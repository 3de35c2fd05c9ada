package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"flowquest/internal/ui"
)

func newMotivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "motivate",
		Short: "Print a daily motivation quote",
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, _, err := buildCoordinator(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconScroll, "Daily Motivation"))
			fmt.Fprintln(cmd.OutOrStdout(), "“"+coord.Motivation(cmd.Context())+"”")
			return nil
		},
	}
}
