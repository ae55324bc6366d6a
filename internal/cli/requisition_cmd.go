package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pmirek/fabops/internal/cli/formatter"
	"github.com/pmirek/fabops/internal/domain"
	"github.com/pmirek/fabops/internal/service"
	"github.com/spf13/cobra"
)

func newRequisitionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "req",
		Aliases: []string{"requisition"},
		Short:   "Manage material requisitions",
	}

	cmd.AddCommand(
		newReqAddCmd(app),
		newReqListCmd(app),
		newReqShowCmd(app),
		newReqOrderCmd(app),
		newReqReceiveCmd(app),
		newReqCancelCmd(app),
	)

	return cmd
}

// parseLineSpec parses a --line value "MATERIAL:QTY:UNIT[:SPEC]".
func parseLineSpec(raw string) (*domain.RequisitionLine, error) {
	parts := strings.SplitN(raw, ":", 4)
	if len(parts) < 3 {
		return nil, fmt.Errorf("line %q must be MATERIAL:QTY:UNIT[:SPEC]", raw)
	}
	qty, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || qty <= 0 {
		return nil, fmt.Errorf("line %q has an invalid quantity", raw)
	}
	l := &domain.RequisitionLine{
		Material: parts[0],
		Quantity: qty,
		Unit:     parts[2],
	}
	if len(parts) == 4 {
		l.Spec = parts[3]
	}
	return l, nil
}

// resolveLineID expands a line ID prefix against a requisition's lines.
func resolveLineID(r *domain.Requisition, input string) (string, error) {
	var match string
	for _, l := range r.Lines {
		if strings.HasPrefix(l.ID, input) {
			if match != "" {
				return "", fmt.Errorf("line prefix %q is ambiguous", input)
			}
			match = l.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no line matches %q on requisition %s", input, r.Number)
	}
	return match, nil
}

func newReqAddCmd(app *App) *cobra.Command {
	var orderRef, supplierID string
	var lines []string

	cmd := &cobra.Command{
		Use:   "add NUMBER",
		Short: "Create a requisition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			r := &domain.Requisition{Number: args[0]}
			if orderRef != "" {
				orderID, err := resolveOrderID(ctx, app, orderRef)
				if err != nil {
					return err
				}
				r.OrderID = &orderID
			}
			if supplierID != "" {
				r.SupplierID = &supplierID
			}
			for _, raw := range lines {
				l, err := parseLineSpec(raw)
				if err != nil {
					return err
				}
				r.Lines = append(r.Lines, l)
			}
			if err := app.Requisitions.Create(ctx, r); err != nil {
				return err
			}
			fmt.Printf("Created requisition %s with %d lines\n", formatter.Bold(r.Number), len(r.Lines))
			return nil
		},
	}

	cmd.Flags().StringVar(&orderRef, "order", "", "order this requisition belongs to")
	cmd.Flags().StringVar(&supplierID, "supplier", "", "supplier ID")
	cmd.Flags().StringArrayVar(&lines, "line", nil, "line as MATERIAL:QTY:UNIT[:SPEC] (repeatable)")
	return cmd
}

func newReqListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List requisitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := app.Requisitions.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(reqs) == 0 {
				fmt.Println(formatter.Dim("No requisitions."))
				return nil
			}

			headers := []string{"Number", "Status", "Lines", "Requested"}
			rows := make([][]string, 0, len(reqs))
			for _, r := range reqs {
				rows = append(rows, []string{
					formatter.Bold(r.Number),
					formatter.RequisitionStatusLabel(r.Status),
					strconv.Itoa(len(r.Lines)),
					r.RequestedAt.Format(domain.DateLayout),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include received and canceled requisitions")
	return cmd
}

func newReqShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a requisition with its lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := app.Requisitions.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Requisition " + r.Number))
			fmt.Printf("  Status:    %s\n", formatter.RequisitionStatusLabel(r.Status))
			fmt.Printf("  Requested: %s\n\n", r.RequestedAt.Format(domain.DateLayout))

			headers := []string{"ID", "Material", "Spec", "Ordered", "Received", "Outstanding"}
			rows := make([][]string, 0, len(r.Lines))
			for _, l := range r.Lines {
				rows = append(rows, []string{
					formatter.Dim(l.ID[:8]),
					l.Material,
					l.Spec,
					fmt.Sprintf("%g %s", l.Quantity, l.Unit),
					fmt.Sprintf("%g", l.ReceivedQty),
					fmt.Sprintf("%g", l.Outstanding()),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newReqOrderCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "order ID",
		Short: "Mark a draft requisition as ordered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Requisitions.MarkOrdered(context.Background(), args[0])
		},
	}
}

func newReqReceiveCmd(app *App) *cobra.Command {
	var on string
	var receipts []string

	cmd := &cobra.Command{
		Use:   "receive ID",
		Short: "Record received quantities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now().UTC()
			if on != "" {
				d, err := domain.ParseDate(on)
				if err != nil {
					return err
				}
				day = *d
			}

			ctx := context.Background()
			req, err := app.Requisitions.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			var lines []service.ReceiptLine
			for _, raw := range receipts {
				parts := strings.SplitN(raw, ":", 2)
				if len(parts) != 2 {
					return fmt.Errorf("receipt %q must be LINE_ID:QTY", raw)
				}
				lineID, err := resolveLineID(req, parts[0])
				if err != nil {
					return err
				}
				qty, err := strconv.ParseFloat(parts[1], 64)
				if err != nil {
					return fmt.Errorf("receipt %q has an invalid quantity", raw)
				}
				lines = append(lines, service.ReceiptLine{LineID: lineID, Quantity: qty})
			}
			if len(lines) == 0 {
				return fmt.Errorf("specify at least one --line LINE_ID:QTY")
			}

			r, err := app.Requisitions.Receive(ctx, req.ID, lines, day)
			if err != nil {
				return err
			}
			fmt.Printf("Requisition %s is now %s\n", formatter.Bold(r.Number), formatter.RequisitionStatusLabel(r.Status))
			return nil
		},
	}

	cmd.Flags().StringVar(&on, "on", "", "receipt date YYYY-MM-DD (default today)")
	cmd.Flags().StringArrayVar(&receipts, "line", nil, "receipt as LINE_ID:QTY (repeatable)")
	return cmd
}

func newReqCancelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel ID",
		Short: "Cancel a requisition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Requisitions.Cancel(context.Background(), args[0])
		},
	}
}
