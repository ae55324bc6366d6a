package cli

import (
	"github.com/pmirek/fabops/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Orders       service.OrderService
	Plans        service.PlanService
	Suppliers    service.SupplierService
	Requisitions service.RequisitionService
	Costs        service.CostService
	Templates    service.TemplateService
	Dashboard    service.DashboardService

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms are only offered when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "fabops" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "fabops",
		Short: "Production planning for the fabrication shop",
	}

	root.AddCommand(
		newOrderCmd(app),
		newPlanCmd(app),
		newSupplierCmd(app),
		newRequisitionCmd(app),
		newCostCmd(app),
		newTemplateCmd(app),
		newDashboardCmd(app),
	)

	return root
}
