package cli

import (
	"context"
	"fmt"

	"github.com/pmirek/fabops/internal/cli/formatter"
	"github.com/pmirek/fabops/internal/domain"
	"github.com/spf13/cobra"
)

func newOrderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Manage customer orders",
	}

	cmd.AddCommand(
		newOrderAddCmd(app),
		newOrderListCmd(app),
		newOrderShowCmd(app),
		newOrderStatusCmd(app),
		newOrderDeleteCmd(app),
		newItemCmd(app),
	)

	return cmd
}

func newOrderAddCmd(app *App) *cobra.Command {
	var customer, description, due string

	cmd := &cobra.Command{
		Use:   "add [NUMBER]",
		Short: "Create a new order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var number string
			if len(args) == 1 {
				number = args[0]
			}

			// Without arguments on a terminal, collect the order in a form.
			if number == "" && app.IsInteractive != nil && app.IsInteractive() {
				if err := orderForm(&number, &customer, &due).Run(); err != nil {
					return err
				}
			}

			dueDate, err := domain.ParseDate(due)
			if err != nil {
				return err
			}
			o := &domain.Order{
				Number:      number,
				Customer:    customer,
				Description: description,
				DueDate:     dueDate,
			}
			if err := app.Orders.Create(context.Background(), o); err != nil {
				return err
			}
			fmt.Printf("Created order %s\n", formatter.Bold(o.Number))
			return nil
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "customer name")
	cmd.Flags().StringVar(&description, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD)")
	return cmd
}

func newOrderListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := app.Orders.List(context.Background(), all)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderOrderList(orders))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include closed and canceled orders")
	return cmd
}

func newOrderShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ORDER",
		Short: "Show an order with its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveOrderID(ctx, app, args[0])
			if err != nil {
				return err
			}
			o, err := app.Orders.GetByID(ctx, id)
			if err != nil {
				return err
			}
			items, err := app.Orders.ListItems(ctx, o.ID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderOrderDetail(o, items))
			return nil
		},
	}
}

func newOrderStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status ORDER STATUS",
		Short: "Set an order's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.ValidOrderStatuses[args[1]] {
				return fmt.Errorf("invalid status %q (one of: open, in_production, delivered, closed, canceled)", args[1])
			}
			ctx := context.Background()
			id, err := resolveOrderID(ctx, app, args[0])
			if err != nil {
				return err
			}
			return app.Orders.SetStatus(ctx, id, domain.OrderStatus(args[1]))
		},
	}
}

func newOrderDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ORDER",
		Short: "Delete an order and everything attached to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveOrderID(ctx, app, args[0])
			if err != nil {
				return err
			}
			return app.Orders.Delete(ctx, id)
		},
	}
}

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage order items",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemRemoveCmd(app),
	)

	return cmd
}

func newItemAddCmd(app *App) *cobra.Command {
	var product, drawing, unit, notes string
	var quantity int

	cmd := &cobra.Command{
		Use:   "add ORDER",
		Short: "Add an item to an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			orderID, err := resolveOrderID(ctx, app, args[0])
			if err != nil {
				return err
			}
			item := &domain.OrderItem{
				OrderID:     orderID,
				ProductType: product,
				Drawing:     drawing,
				Quantity:    quantity,
				Unit:        unit,
				Notes:       notes,
			}
			if err := app.Orders.AddItem(ctx, item); err != nil {
				return err
			}
			fmt.Printf("Added item %s (%s)\n", formatter.Dim(item.DisplayID()), item.ProductType)
			return nil
		},
	}

	cmd.Flags().StringVar(&product, "product", "", "product type (selects the plan template)")
	cmd.Flags().StringVar(&drawing, "drawing", "", "drawing reference")
	cmd.Flags().IntVar(&quantity, "qty", 1, "quantity")
	cmd.Flags().StringVar(&unit, "unit", "pcs", "unit of measure")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("product")
	return cmd
}

func newItemRemoveCmd(app *App) *cobra.Command {
	var orderRef string

	cmd := &cobra.Command{
		Use:   "remove ITEM",
		Short: "Remove an item and its plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveItemID(ctx, app, args[0], orderRef)
			if err != nil {
				return err
			}
			return app.Orders.RemoveItem(ctx, id)
		},
	}

	cmd.Flags().StringVar(&orderRef, "order", "", "order number or ID for positional item references")
	return cmd
}
