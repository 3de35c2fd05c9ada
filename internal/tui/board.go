package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"flowquest/internal/app"
)

// Run starts the interactive session and blocks until the user quits.
func Run(ctx context.Context, coord *app.Coordinator, name string, out io.Writer) error {
	m := newAppModel(ctx, coord, name)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
