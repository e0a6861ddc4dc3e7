package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/oguzhnd/ritual/internal/cli"
	"github.com/oguzhnd/ritual/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	DB      string `help:"Database file path." type:"path"`

	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Add    cli.AddCmd    `cmd:"" help:"Add a new habit."`
	Done   cli.DoneCmd   `cmd:"" help:"Log a habit for a day."`
	Rename cli.RenameCmd `cmd:"" help:"Rename a habit."`
	List   cli.ListCmd   `cmd:"" help:"List habits with today's status."`
	Stats  cli.StatsCmd  `cmd:"" help:"Show consistency stats and trends."`
	Year   cli.YearCmd   `cmd:"" help:"Show the year in review."`
	Export cli.ExportCmd `cmd:"" help:"Export habits to CSV or JSON."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("ritual"),
		kong.Description("Terminal habit tracker with streaks, trends and a yearly review"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	dbPath := CLI.DB
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	s, err := store.New(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	if err := ctx.Run(&cli.Context{Store: s}); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
