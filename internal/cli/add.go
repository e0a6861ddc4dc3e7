package cli

import "fmt"

type AddCmd struct {
	Name      string `arg:"" help:"Habit name."`
	Type      string `short:"t" help:"Habit type (binary|counter|timer)." default:"binary"`
	Frequency string `short:"f" help:"Frequency (daily|weekly)." default:"daily"`
	Target    int    `short:"T" help:"Daily target (count or minutes)." default:"1"`
}

func (c *AddCmd) Validate() error {
	if c.Target < 1 {
		return fmt.Errorf("target must be at least 1")
	}
	return nil
}

func (c *AddCmd) Run(ctx *Context) error {
	typ, err := parseHabitType(c.Type)
	if err != nil {
		return err
	}
	freq, err := parseFrequency(c.Frequency)
	if err != nil {
		return err
	}

	h, err := ctx.Store.CreateHabit(c.Name, typ, freq, c.Target)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (ID: %s)\n", h.Name, h.ID)
	return nil
}
