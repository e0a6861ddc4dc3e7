package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oguzhnd/ritual/internal/export"
)

type ExportCmd struct {
	Format string `short:"f" help:"Export format (csv|json)." enum:"csv,json" default:"csv"`
	Out    string `short:"o" help:"Output path (default: ~/ritual-export-<date>.<format>)." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.ListHabits()
	if err != nil {
		return err
	}

	path := c.Out
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dateStr := time.Now().Format("2006-01-02")
		path = filepath.Join(home, fmt.Sprintf("ritual-export-%s.%s", dateStr, c.Format))
	}

	switch c.Format {
	case "json":
		err = export.ToJSON(habits, path)
	default:
		err = export.ToCSV(habits, path)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d habits to %s\n", len(habits), path)
	return nil
}
