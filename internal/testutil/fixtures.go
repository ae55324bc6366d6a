package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pmirek/fabops/internal/domain"
	"github.com/pmirek/fabops/internal/repository"
)

var fixtureNow = time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC)

// MakeOrder inserts an order with one item and returns both.
func MakeOrder(t *testing.T, database *sql.DB, number, productType string) (*domain.Order, *domain.OrderItem) {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewSQLiteOrderRepo(database)

	o := &domain.Order{
		ID:        uuid.New().String(),
		Number:    number,
		Customer:  "Acme Industrial",
		Status:    domain.OrderOpen,
		CreatedAt: fixtureNow,
		UpdatedAt: fixtureNow,
	}
	if err := repo.Create(ctx, o); err != nil {
		t.Fatalf("creating fixture order: %v", err)
	}

	item := &domain.OrderItem{
		ID:          uuid.New().String(),
		OrderID:     o.ID,
		ProductType: productType,
		Quantity:    1,
		Unit:        "pcs",
		CreatedAt:   fixtureNow,
		UpdatedAt:   fixtureNow,
	}
	if err := repo.CreateItem(ctx, item); err != nil {
		t.Fatalf("creating fixture order item: %v", err)
	}
	return o, item
}

// MakeTemplate inserts a plan template for the given product type.
func MakeTemplate(t *testing.T, database *sql.DB, productType string, stages ...*domain.TemplateStage) *domain.PlanTemplate {
	t.Helper()
	repo := repository.NewSQLiteTemplateRepo(database)

	tpl := &domain.PlanTemplate{
		ID:          uuid.New().String(),
		ProductType: productType,
		Name:        productType + " default plan",
		CreatedAt:   fixtureNow,
		UpdatedAt:   fixtureNow,
		Stages:      stages,
	}
	if err := repo.Create(context.Background(), tpl); err != nil {
		t.Fatalf("creating fixture template: %v", err)
	}
	return tpl
}
