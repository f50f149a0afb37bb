package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unrot/unrot/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	eng, err := ctx.engine()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(eng), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
