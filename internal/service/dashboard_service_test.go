package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmirek/fabops/internal/domain"
	"github.com/pmirek/fabops/internal/repository"
	"github.com/pmirek/fabops/internal/testutil"
)

func TestDashboardSnapshot(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	orders := repository.NewSQLiteOrderRepo(database)
	plans := repository.NewSQLitePlanRepo(database, testutil.NewTestUoW(database))
	requisitions := repository.NewSQLiteRequisitionRepo(database)
	costs := repository.NewSQLiteCostRepo(database)

	order1, item1 := testutil.MakeOrder(t, database, "ORD-2001", "bracket")
	_, _ = testutil.MakeOrder(t, database, "ORD-2002", "frame")

	order1.Status = domain.OrderInProduction
	require.NoError(t, orders.Update(ctx, order1))

	// One completed stage and one overdue in-progress stage.
	done := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, time.April, 3, 0, 0, 0, 0, time.UTC)
	require.NoError(t, plans.ReplacePlan(ctx, item1.ID, []*domain.ProductionStage{
		{Name: "Cutting", Status: domain.StageCompleted, StartDate: &done, CompletedDate: &done, DurationDays: 1, UseBusinessDays: true},
		{Name: "Welding", Status: domain.StageInProgress, StartDate: &late, CompletedDate: &late, DurationDays: 1, UseBusinessDays: true},
	}))

	require.NoError(t, requisitions.Create(ctx, &domain.Requisition{
		ID:          uuid.New().String(),
		Number:      "REQ-0001",
		Status:      domain.RequisitionOrdered,
		RequestedAt: done,
		CreatedAt:   done,
		UpdatedAt:   done,
	}))

	require.NoError(t, costs.Create(ctx, &domain.CostEntry{
		ID: uuid.New().String(), OrderID: order1.ID,
		Category: domain.CostMaterial, Description: "plate", Amount: 420.50,
		IncurredOn: done, CreatedAt: done,
	}))
	require.NoError(t, costs.Create(ctx, &domain.CostEntry{
		ID: uuid.New().String(), OrderID: order1.ID,
		Category: domain.CostLabor, Description: "welding hours", Amount: 310,
		IncurredOn: done, CreatedAt: done,
	}))

	svc := NewDashboardService(orders, plans, requisitions, costs)
	today := time.Date(2025, time.April, 10, 12, 0, 0, 0, time.UTC)

	data, err := svc.Snapshot(ctx, today)
	require.NoError(t, err)

	assert.Equal(t, 1, data.OrdersByStatus[domain.OrderOpen])
	assert.Equal(t, 1, data.OrdersByStatus[domain.OrderInProduction])

	assert.Equal(t, 1, data.StagesByStatus[domain.StageCompleted])
	assert.Equal(t, 1, data.StagesByStatus[domain.StageInProgress])

	require.Len(t, data.OverdueStages, 1)
	assert.Equal(t, "Welding", data.OverdueStages[0].Name)

	assert.Equal(t, 1, data.OpenRequisitions)

	assert.InDelta(t, 420.50, data.CostTotals[domain.CostMaterial], 0.001)
	assert.InDelta(t, 310.0, data.CostTotals[domain.CostLabor], 0.001)
}

func TestDashboardSnapshot_EmptyDatabase(t *testing.T) {
	database := testutil.NewTestDB(t)

	svc := NewDashboardService(
		repository.NewSQLiteOrderRepo(database),
		repository.NewSQLitePlanRepo(database, testutil.NewTestUoW(database)),
		repository.NewSQLiteRequisitionRepo(database),
		repository.NewSQLiteCostRepo(database),
	)

	data, err := svc.Snapshot(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, data.OrdersByStatus)
	assert.Empty(t, data.OverdueStages)
	assert.Zero(t, data.OpenRequisitions)
}
