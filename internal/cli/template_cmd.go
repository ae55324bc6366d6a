package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pmirek/fabops/internal/cli/formatter"
	"github.com/pmirek/fabops/internal/domain"
	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage plan templates",
	}

	cmd.AddCommand(
		newTemplateAddCmd(app),
		newTemplateListCmd(app),
		newTemplateShowCmd(app),
		newTemplateDeleteCmd(app),
	)

	return cmd
}

// parseTemplateStage parses a --stage value "NAME:DAYS[:calendar]".
// Stages count business days unless the calendar suffix is given.
func parseTemplateStage(raw string) (*domain.TemplateStage, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) < 2 {
		return nil, fmt.Errorf("stage %q must be NAME:DAYS[:calendar]", raw)
	}
	days, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || days <= 0 {
		return nil, fmt.Errorf("stage %q has an invalid duration", raw)
	}
	st := &domain.TemplateStage{
		Name:            parts[0],
		DurationDays:    days,
		UseBusinessDays: true,
	}
	if len(parts) == 3 {
		switch parts[2] {
		case "calendar":
			st.UseBusinessDays = false
		case "business":
		default:
			return nil, fmt.Errorf("stage %q mode must be business or calendar", raw)
		}
	}
	return st, nil
}

func newTemplateAddCmd(app *App) *cobra.Command {
	var name string
	var stages []string

	cmd := &cobra.Command{
		Use:   "add PRODUCT_TYPE",
		Short: "Create a plan template for a product type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl := &domain.PlanTemplate{
				ProductType: args[0],
				Name:        name,
			}
			if tpl.Name == "" {
				tpl.Name = args[0] + " default plan"
			}
			for _, raw := range stages {
				st, err := parseTemplateStage(raw)
				if err != nil {
					return err
				}
				tpl.Stages = append(tpl.Stages, st)
			}
			if err := app.Templates.Create(context.Background(), tpl); err != nil {
				return err
			}
			fmt.Printf("Created template %s with %d stages\n", formatter.Bold(tpl.ProductType), len(tpl.Stages))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringArrayVar(&stages, "stage", nil, "stage as NAME:DAYS[:calendar] (repeatable, in order)")
	return cmd
}

func newTemplateListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List plan templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := app.Templates.List(context.Background())
			if err != nil {
				return err
			}
			if len(templates) == 0 {
				fmt.Println(formatter.Dim("No templates."))
				return nil
			}

			headers := []string{"Product", "Name", "Stages"}
			rows := make([][]string, 0, len(templates))
			for _, tpl := range templates {
				rows = append(rows, []string{
					formatter.Bold(tpl.ProductType),
					tpl.Name,
					strconv.Itoa(len(tpl.Stages)),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newTemplateShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PRODUCT_TYPE",
		Short: "Show a template's stage list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl, err := app.Templates.GetByProductType(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Template " + tpl.ProductType))
			fmt.Printf("  Name: %s\n\n", formatter.Bold(tpl.Name))

			headers := []string{"#", "Stage", "Days", "Mode"}
			rows := make([][]string, 0, len(tpl.Stages))
			for i, st := range tpl.Stages {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					st.Name,
					formatter.FormatDays(st.DurationDays),
					formatter.FormatMode(st.UseBusinessDays),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newTemplateDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Templates.Delete(context.Background(), args[0])
		},
	}
}
