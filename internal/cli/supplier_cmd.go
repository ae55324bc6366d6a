package cli

import (
	"context"
	"fmt"

	"github.com/pmirek/fabops/internal/cli/formatter"
	"github.com/pmirek/fabops/internal/domain"
	"github.com/spf13/cobra"
)

func newSupplierCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "supplier",
		Short: "Manage suppliers",
	}

	cmd.AddCommand(
		newSupplierAddCmd(app),
		newSupplierListCmd(app),
		newSupplierDeleteCmd(app),
	)

	return cmd
}

func newSupplierAddCmd(app *App) *cobra.Command {
	var contact, phone, email, notes string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a supplier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &domain.Supplier{
				Name:    args[0],
				Contact: contact,
				Phone:   phone,
				Email:   email,
				Notes:   notes,
			}
			if err := app.Suppliers.Create(context.Background(), s); err != nil {
				return err
			}
			fmt.Printf("Added supplier %s\n", formatter.Bold(s.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&contact, "contact", "", "contact person")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	return cmd
}

func newSupplierListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List suppliers",
		RunE: func(cmd *cobra.Command, args []string) error {
			suppliers, err := app.Suppliers.List(context.Background())
			if err != nil {
				return err
			}
			if len(suppliers) == 0 {
				fmt.Println(formatter.Dim("No suppliers."))
				return nil
			}

			headers := []string{"ID", "Name", "Contact", "Phone", "Email"}
			rows := make([][]string, 0, len(suppliers))
			for _, s := range suppliers {
				rows = append(rows, []string{
					formatter.Dim(s.ID[:8]),
					formatter.Bold(s.Name),
					s.Contact,
					s.Phone,
					s.Email,
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newSupplierDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a supplier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Suppliers.Delete(context.Background(), args[0])
		},
	}
}
