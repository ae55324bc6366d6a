package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pmirek/fabops/internal/cli/formatter"
	"github.com/pmirek/fabops/internal/domain"
	"github.com/pmirek/fabops/internal/service"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "View and edit production plans",
	}

	cmd.AddCommand(
		newPlanShowCmd(app),
		newPlanSetCmd(app),
		newPlanAddStageCmd(app),
		newPlanRemoveStageCmd(app),
	)

	return cmd
}

// planStageNumber converts the 1-based display number to a plan index.
func planStageNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("stage number must be a positive integer, got %q", arg)
	}
	return n - 1, nil
}

func newPlanShowCmd(app *App) *cobra.Command {
	var orderRef string

	cmd := &cobra.Command{
		Use:   "show ITEM",
		Short: "Show an item's production plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolveItemID(ctx, app, args[0], orderRef)
			if err != nil {
				return err
			}
			plan, err := app.Plans.EnsurePlan(ctx, itemID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderPlan(plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&orderRef, "order", "", "order number or ID for positional item references")
	return cmd
}

func newPlanSetCmd(app *App) *cobra.Command {
	var orderRef string
	var duration, start, status, name string
	var businessDays, calendarDays bool

	cmd := &cobra.Command{
		Use:   "set ITEM STAGE",
		Short: "Edit one stage field and recompute the schedule",
		Long: `Edit a single field of one plan stage. Date and duration edits
recompute the edited stage and everything after it; switching between
business and calendar days recomputes the whole plan.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolveItemID(ctx, app, args[0], orderRef)
			if err != nil {
				return err
			}
			index, err := planStageNumber(args[1])
			if err != nil {
				return err
			}

			var edit service.StageEdit
			switch {
			case cmd.Flags().Changed("days"):
				edit.Duration = &duration
			case cmd.Flags().Changed("start"):
				edit.StartDate = &start
			case businessDays:
				v := true
				edit.UseBusinessDays = &v
			case calendarDays:
				v := false
				edit.UseBusinessDays = &v
			case cmd.Flags().Changed("status"):
				if !domain.ValidStageStatuses[status] {
					return fmt.Errorf("invalid status %q (one of: pending, in_progress, completed)", status)
				}
				s := domain.StageStatus(status)
				edit.Status = &s
			case cmd.Flags().Changed("name"):
				edit.Name = &name
			default:
				return fmt.Errorf("specify one of --days, --start, --business, --calendar, --status, --name")
			}

			plan, err := app.Plans.EditStage(ctx, itemID, index, edit)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderPlan(plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&orderRef, "order", "", "order number or ID for positional item references")
	cmd.Flags().StringVar(&duration, "days", "", "stage duration in days (fractions allowed)")
	cmd.Flags().StringVar(&start, "start", "", "start date YYYY-MM-DD; empty clears the schedule from this stage")
	cmd.Flags().BoolVar(&businessDays, "business", false, "count this stage in business days")
	cmd.Flags().BoolVar(&calendarDays, "calendar", false, "count this stage in calendar days")
	cmd.Flags().StringVar(&status, "status", "", "stage status")
	cmd.Flags().StringVar(&name, "name", "", "rename the stage")
	return cmd
}

func newPlanAddStageCmd(app *App) *cobra.Command {
	var orderRef string

	cmd := &cobra.Command{
		Use:   "add-stage ITEM NAME",
		Short: "Append a stage to an item's plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolveItemID(ctx, app, args[0], orderRef)
			if err != nil {
				return err
			}
			plan, err := app.Plans.AddStage(ctx, itemID, args[1])
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderPlan(plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&orderRef, "order", "", "order number or ID for positional item references")
	return cmd
}

func newPlanRemoveStageCmd(app *App) *cobra.Command {
	var orderRef string

	cmd := &cobra.Command{
		Use:   "remove-stage ITEM STAGE",
		Short: "Remove a stage from an item's plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolveItemID(ctx, app, args[0], orderRef)
			if err != nil {
				return err
			}
			index, err := planStageNumber(args[1])
			if err != nil {
				return err
			}
			plan, err := app.Plans.RemoveStage(ctx, itemID, index)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderPlan(plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&orderRef, "order", "", "order number or ID for positional item references")
	return cmd
}
