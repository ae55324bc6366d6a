package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pmirek/fabops/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Show the shop performance snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.Dashboard.Snapshot(context.Background(), time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderDashboard(data))
			return nil
		},
	}
}
