package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/oguzhnd/ritual/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	p := tea.NewProgram(tui.NewApp(ctx.Store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
