package root

import (
	"github.com/spf13/cobra"

	"flowquest/internal/tui"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive session (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd)
		},
	}
}

func runBoard(cmd *cobra.Command) error {
	coord, env, err := buildCoordinator(cmd.Context())
	if err != nil {
		return err
	}
	return tui.Run(cmd.Context(), coord, env.DisplayName, cmd.OutOrStdout())
}
