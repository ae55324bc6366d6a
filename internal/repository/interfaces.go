package repository

import (
	"context"
	"errors"

	"github.com/pmirek/fabops/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type OrderRepo interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)
	List(ctx context.Context, includeClosed bool) ([]*domain.Order, error)
	Update(ctx context.Context, o *domain.Order) error
	Delete(ctx context.Context, id string) error

	CreateItem(ctx context.Context, i *domain.OrderItem) error
	GetItem(ctx context.Context, id string) (*domain.OrderItem, error)
	ListItems(ctx context.Context, orderID string) ([]*domain.OrderItem, error)
	UpdateItem(ctx context.Context, i *domain.OrderItem) error
	DeleteItem(ctx context.Context, id string) error
}

// PlanRepo persists production plans as whole arrays attached to an order
// item. There are no per-stage updates: reads return the full ordered
// list and writes replace it.
type PlanRepo interface {
	GetPlan(ctx context.Context, itemID string) ([]*domain.ProductionStage, error)
	ReplacePlan(ctx context.Context, itemID string, stages []*domain.ProductionStage) error
	CountStagesByStatus(ctx context.Context) (map[domain.StageStatus]int, error)
	ListOverdueStages(ctx context.Context, today string) ([]*domain.ProductionStage, error)
}

type SupplierRepo interface {
	Create(ctx context.Context, s *domain.Supplier) error
	GetByID(ctx context.Context, id string) (*domain.Supplier, error)
	List(ctx context.Context) ([]*domain.Supplier, error)
	Update(ctx context.Context, s *domain.Supplier) error
	Delete(ctx context.Context, id string) error
}

type RequisitionRepo interface {
	Create(ctx context.Context, r *domain.Requisition) error
	GetByID(ctx context.Context, id string) (*domain.Requisition, error)
	List(ctx context.Context, includeClosed bool) ([]*domain.Requisition, error)
	Update(ctx context.Context, r *domain.Requisition) error
	UpdateLine(ctx context.Context, l *domain.RequisitionLine) error
	Delete(ctx context.Context, id string) error
}

type CostRepo interface {
	Create(ctx context.Context, c *domain.CostEntry) error
	ListByOrder(ctx context.Context, orderID string) ([]*domain.CostEntry, error)
	TotalsByCategory(ctx context.Context, orderID string) (map[domain.CostCategory]float64, error)
	Delete(ctx context.Context, id string) error
}

type TemplateRepo interface {
	Create(ctx context.Context, t *domain.PlanTemplate) error
	GetByProductType(ctx context.Context, productType string) (*domain.PlanTemplate, error)
	List(ctx context.Context) ([]*domain.PlanTemplate, error)
	Delete(ctx context.Context, id string) error
}
