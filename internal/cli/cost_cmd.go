package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/pmirek/fabops/internal/cli/formatter"
	"github.com/pmirek/fabops/internal/domain"
	"github.com/spf13/cobra"
)

func newCostCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Track order costs",
	}

	cmd.AddCommand(
		newCostAddCmd(app),
		newCostListCmd(app),
	)

	return cmd
}

func newCostAddCmd(app *App) *cobra.Command {
	var category, description, on string

	cmd := &cobra.Command{
		Use:   "add ORDER AMOUNT",
		Short: "Add a cost entry to an order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			orderID, err := resolveOrderID(ctx, app, args[0])
			if err != nil {
				return err
			}
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}

			c := &domain.CostEntry{
				OrderID:     orderID,
				Category:    domain.CostCategory(category),
				Description: description,
				Amount:      amount,
			}
			if on != "" {
				d, err := domain.ParseDate(on)
				if err != nil {
					return err
				}
				c.IncurredOn = *d
			}
			if err := app.Costs.Add(ctx, c); err != nil {
				return err
			}
			fmt.Printf("Recorded %s %s\n", formatter.Bold(formatter.FormatMoney(amount)), formatter.Dim(category))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "material", "material, labor, outsourcing, overhead or other")
	cmd.Flags().StringVar(&description, "desc", "", "what the money went to")
	cmd.Flags().StringVar(&on, "on", "", "date incurred YYYY-MM-DD (default today)")
	return cmd
}

func newCostListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list ORDER",
		Short: "List an order's cost entries with category totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			orderID, err := resolveOrderID(ctx, app, args[0])
			if err != nil {
				return err
			}
			entries, err := app.Costs.ListByOrder(ctx, orderID)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println(formatter.Dim("No cost entries."))
				return nil
			}

			headers := []string{"Date", "Category", "Description", "Amount"}
			rows := make([][]string, 0, len(entries))
			for _, c := range entries {
				rows = append(rows, []string{
					c.IncurredOn.Format(domain.DateLayout),
					string(c.Category),
					c.Description,
					formatter.FormatMoney(c.Amount),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))

			totals, err := app.Costs.TotalsByCategory(ctx, orderID)
			if err != nil {
				return err
			}
			categories := make([]string, 0, len(totals))
			for c := range totals {
				categories = append(categories, string(c))
			}
			sort.Strings(categories)

			fmt.Println()
			var grand float64
			for _, c := range categories {
				amount := totals[domain.CostCategory(c)]
				grand += amount
				fmt.Printf("  %-14s %12s\n", c, formatter.FormatMoney(amount))
			}
			fmt.Printf("  %-14s %12s\n", formatter.Bold("total"), formatter.Bold(formatter.FormatMoney(grand)))
			return nil
		},
	}
}
