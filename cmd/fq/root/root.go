package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"flowquest/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "fq",
	Short:         "Flowquest — gamified tasks and focus timer",
	Long:          "Flowquest is a terminal productivity app: task tracking, a Pomodoro focus timer, and XP/level/streak rewards for getting things done.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBoard(cmd)
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newBoardCmd(),
		newParseCmd(),
		newMotivateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
