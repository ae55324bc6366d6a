package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pmirek/fabops/internal/calendar"
	"github.com/pmirek/fabops/internal/cli"
	"github.com/pmirek/fabops/internal/db"
	"github.com/pmirek/fabops/internal/repository"
	"github.com/pmirek/fabops/internal/scheduler"
	"github.com/pmirek/fabops/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.fabops/fabops.db
	dbPath := os.Getenv("FABOPS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".fabops", "fabops.db")
	}

	// The built-in holiday table can be replaced with a file of
	// YYYY-MM-DD dates, one per line.
	cal := calendar.Default()
	if path := os.Getenv("FABOPS_HOLIDAYS"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening holiday file: %w", err)
		}
		holidays, err := calendar.ParseHolidayList(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("reading holiday file: %w", err)
		}
		cal = calendar.New(holidays)
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	orderRepo := repository.NewSQLiteOrderRepo(database)
	supplierRepo := repository.NewSQLiteSupplierRepo(database)
	requisitionRepo := repository.NewSQLiteRequisitionRepo(database)
	costRepo := repository.NewSQLiteCostRepo(database)
	templateRepo := repository.NewSQLiteTemplateRepo(database)

	// Wire unit of work for transactional plan replacement
	uow := db.NewSQLiteUnitOfWork(database)
	planRepo := repository.NewSQLitePlanRepo(database, uow)

	editor := scheduler.NewEditor(cal, func() time.Time { return time.Now().UTC() })

	app := &cli.App{
		Orders:       service.NewOrderService(orderRepo),
		Plans:        service.NewPlanService(planRepo, orderRepo, templateRepo, editor),
		Suppliers:    service.NewSupplierService(supplierRepo),
		Requisitions: service.NewRequisitionService(requisitionRepo),
		Costs:        service.NewCostService(costRepo),
		Templates:    service.NewTemplateService(templateRepo),
		Dashboard:    service.NewDashboardService(orderRepo, planRepo, requisitionRepo, costRepo),
	}

	// Detect interactive terminal for form-based entry.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
