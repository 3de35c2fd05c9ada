package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"flowquest/internal/ui"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Preview how free text becomes a structured task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("text is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, _, err := buildCoordinator(cmd.Context())
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			created := coord.AddTask(cmd.Context(), text)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSpark, "Parsed Task"))
			fmt.Fprintln(out, ui.LabelValue("Title", created.Title))
			if created.Description != "" {
				fmt.Fprintln(out, ui.LabelValue("Description", created.Description))
			}
			fmt.Fprintln(out, ui.LabelValue("Priority", created.Priority))
			fmt.Fprintln(out, ui.LabelValue("Energy", created.EnergyLevel))
			fmt.Fprintln(out, ui.LabelValue("Duration", fmt.Sprintf("%d min", created.DurationMinutes)))
			if len(created.Tags) > 0 {
				fmt.Fprintln(out, ui.LabelValue("Tags", strings.Join(created.Tags, ", ")))
			}
			return nil
		},
	}
}
