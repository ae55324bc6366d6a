package service

import (
	"context"
	"time"

	"github.com/pmirek/fabops/internal/domain"
)

type OrderService interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)
	List(ctx context.Context, includeClosed bool) ([]*domain.Order, error)
	Update(ctx context.Context, o *domain.Order) error
	SetStatus(ctx context.Context, id string, status domain.OrderStatus) error
	Delete(ctx context.Context, id string) error

	AddItem(ctx context.Context, i *domain.OrderItem) error
	GetItem(ctx context.Context, id string) (*domain.OrderItem, error)
	ListItems(ctx context.Context, orderID string) ([]*domain.OrderItem, error)
	RemoveItem(ctx context.Context, id string) error
}

// StageEdit is a single-field edit on one stage of an item's plan.
// Exactly one of the pointer fields is set; the service routes it to the
// matching recompute strategy.
type StageEdit struct {
	Duration        *string
	StartDate       *string
	UseBusinessDays *bool
	Status          *domain.StageStatus
	Name            *string
}

type PlanService interface {
	GetPlan(ctx context.Context, itemID string) ([]*domain.ProductionStage, error)
	// EnsurePlan returns the item's plan, seeding it from the product-type
	// template first if the item has none.
	EnsurePlan(ctx context.Context, itemID string) ([]*domain.ProductionStage, error)
	EditStage(ctx context.Context, itemID string, index int, edit StageEdit) ([]*domain.ProductionStage, error)
	AddStage(ctx context.Context, itemID string, name string) ([]*domain.ProductionStage, error)
	RemoveStage(ctx context.Context, itemID string, index int) ([]*domain.ProductionStage, error)
}

type SupplierService interface {
	Create(ctx context.Context, s *domain.Supplier) error
	GetByID(ctx context.Context, id string) (*domain.Supplier, error)
	List(ctx context.Context) ([]*domain.Supplier, error)
	Update(ctx context.Context, s *domain.Supplier) error
	Delete(ctx context.Context, id string) error
}

// ReceiptLine records a received quantity against one requisition line.
type ReceiptLine struct {
	LineID   string
	Quantity float64
}

type RequisitionService interface {
	Create(ctx context.Context, r *domain.Requisition) error
	GetByID(ctx context.Context, id string) (*domain.Requisition, error)
	List(ctx context.Context, includeClosed bool) ([]*domain.Requisition, error)
	MarkOrdered(ctx context.Context, id string) error
	Receive(ctx context.Context, id string, receipts []ReceiptLine, receivedOn time.Time) (*domain.Requisition, error)
	Cancel(ctx context.Context, id string) error
}

type CostService interface {
	Add(ctx context.Context, c *domain.CostEntry) error
	ListByOrder(ctx context.Context, orderID string) ([]*domain.CostEntry, error)
	TotalsByCategory(ctx context.Context, orderID string) (map[domain.CostCategory]float64, error)
	Delete(ctx context.Context, id string) error
}

type TemplateService interface {
	Create(ctx context.Context, t *domain.PlanTemplate) error
	GetByProductType(ctx context.Context, productType string) (*domain.PlanTemplate, error)
	List(ctx context.Context) ([]*domain.PlanTemplate, error)
	Delete(ctx context.Context, id string) error
}

// DashboardData is the aggregate view behind the performance dashboard.
type DashboardData struct {
	OrdersByStatus   map[domain.OrderStatus]int
	StagesByStatus   map[domain.StageStatus]int
	OverdueStages    []*domain.ProductionStage
	OpenRequisitions int
	CostTotals       map[domain.CostCategory]float64
}

type DashboardService interface {
	Snapshot(ctx context.Context, today time.Time) (*DashboardData, error)
}
