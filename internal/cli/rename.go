package cli

import (
	"fmt"
	"strings"
)

type RenameCmd struct {
	Habit string `arg:"" help:"Habit name, name prefix, or ID."`
	Name  string `arg:"" help:"New habit name."`
}

func (c *RenameCmd) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("new name cannot be empty")
	}
	return nil
}

func (c *RenameCmd) Run(ctx *Context) error {
	h, err := findHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	if err := ctx.Store.RenameHabit(h.ID, c.Name); err != nil {
		return err
	}

	fmt.Printf("Renamed %s to %s\n", h.Name, c.Name)
	return nil
}
