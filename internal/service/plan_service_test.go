package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmirek/fabops/internal/calendar"
	"github.com/pmirek/fabops/internal/domain"
	"github.com/pmirek/fabops/internal/repository"
	"github.com/pmirek/fabops/internal/scheduler"
	"github.com/pmirek/fabops/internal/testutil"
)

func newPlanServiceOn(t *testing.T, database *sql.DB) (PlanService, *repository.SQLitePlanRepo) {
	t.Helper()
	plans := repository.NewSQLitePlanRepo(database, testutil.NewTestUoW(database))
	orders := repository.NewSQLiteOrderRepo(database)
	templates := repository.NewSQLiteTemplateRepo(database)
	editor := scheduler.NewEditor(calendar.Default(), nil)
	return NewPlanService(plans, orders, templates, editor), plans
}

func newPlanService(t *testing.T) (PlanService, *repository.SQLitePlanRepo, string) {
	t.Helper()
	database := testutil.NewTestDB(t)
	svc, plans := newPlanServiceOn(t, database)

	testutil.MakeTemplate(t, database, "bracket",
		&domain.TemplateStage{Name: "Cutting", DurationDays: 1, UseBusinessDays: true},
		&domain.TemplateStage{Name: "Welding", DurationDays: 2, UseBusinessDays: true},
		&domain.TemplateStage{Name: "Painting", DurationDays: 1, UseBusinessDays: false},
	)
	_, item := testutil.MakeOrder(t, database, "ORD-1001", "bracket")
	return svc, plans, item.ID
}

func TestEnsurePlan_SeedsFromTemplate(t *testing.T) {
	svc, plans, itemID := newPlanService(t)
	ctx := context.Background()

	plan, err := svc.EnsurePlan(ctx, itemID)
	require.NoError(t, err)
	require.Len(t, plan, 3)
	assert.Equal(t, "Cutting", plan[0].Name)
	assert.Equal(t, domain.StagePending, plan[0].Status)
	assert.Nil(t, plan[0].StartDate)

	// The seeded plan is persisted, not just returned.
	stored, err := plans.GetPlan(ctx, itemID)
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestEnsurePlan_NoTemplateYieldsEmptyPlan(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc, _ := newPlanServiceOn(t, database)
	_, item := testutil.MakeOrder(t, database, "ORD-1002", "one-off")

	plan, err := svc.EnsurePlan(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Empty(t, plan)
}

func TestEnsurePlan_ExistingPlanIsNotReseeded(t *testing.T) {
	svc, plans, itemID := newPlanService(t)
	ctx := context.Background()

	custom := []*domain.ProductionStage{
		{Name: "Manual stage", Status: domain.StagePending, DurationDays: 1, UseBusinessDays: true},
	}
	require.NoError(t, plans.ReplacePlan(ctx, itemID, custom))

	plan, err := svc.EnsurePlan(ctx, itemID)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "Manual stage", plan[0].Name)
}

func TestEditStage_StartDatePropagatesAndPersists(t *testing.T) {
	svc, plans, itemID := newPlanService(t)
	ctx := context.Background()

	_, err := svc.EnsurePlan(ctx, itemID)
	require.NoError(t, err)

	start := "2025-03-03" // Monday
	plan, err := svc.EditStage(ctx, itemID, 0, StageEdit{StartDate: &start})
	require.NoError(t, err)
	require.Len(t, plan, 3)

	// Cutting finishes the day it starts. Welding starts the next business
	// day (Tue Mar 4) and spans two business days to Thu Mar 6. Painting
	// chains on the calendar: Fri Mar 7, done the same day.
	require.NotNil(t, plan[0].CompletedDate)
	assert.Equal(t, "2025-03-03", plan[0].CompletedDate.Format(domain.DateLayout))
	require.NotNil(t, plan[1].StartDate)
	assert.Equal(t, "2025-03-04", plan[1].StartDate.Format(domain.DateLayout))
	require.NotNil(t, plan[1].CompletedDate)
	assert.Equal(t, "2025-03-06", plan[1].CompletedDate.Format(domain.DateLayout))
	require.NotNil(t, plan[2].CompletedDate)
	assert.Equal(t, "2025-03-07", plan[2].CompletedDate.Format(domain.DateLayout))

	stored, err := plans.GetPlan(ctx, itemID)
	require.NoError(t, err)
	require.NotNil(t, stored[2].CompletedDate)
	assert.Equal(t, "2025-03-07", stored[2].CompletedDate.Format(domain.DateLayout))
}

func TestEditStage_MalformedDateIsAnError(t *testing.T) {
	svc, _, itemID := newPlanService(t)
	ctx := context.Background()

	_, err := svc.EnsurePlan(ctx, itemID)
	require.NoError(t, err)

	bad := "03/03/2025"
	_, err = svc.EditStage(ctx, itemID, 0, StageEdit{StartDate: &bad})
	assert.Error(t, err)
}

func TestEditStage_IndexOutOfRange(t *testing.T) {
	svc, _, itemID := newPlanService(t)
	ctx := context.Background()

	_, err := svc.EnsurePlan(ctx, itemID)
	require.NoError(t, err)

	dur := "2"
	_, err = svc.EditStage(ctx, itemID, 7, StageEdit{Duration: &dur})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestEditStage_EmptyEditIsAnError(t *testing.T) {
	svc, _, itemID := newPlanService(t)
	ctx := context.Background()

	_, err := svc.EnsurePlan(ctx, itemID)
	require.NoError(t, err)

	_, err = svc.EditStage(ctx, itemID, 0, StageEdit{})
	assert.Error(t, err)
}

func TestAddRemoveStage(t *testing.T) {
	svc, _, itemID := newPlanService(t)
	ctx := context.Background()

	_, err := svc.EnsurePlan(ctx, itemID)
	require.NoError(t, err)

	plan, err := svc.AddStage(ctx, itemID, "Inspection")
	require.NoError(t, err)
	require.Len(t, plan, 4)
	assert.Equal(t, "Inspection", plan[3].Name)
	assert.Equal(t, domain.StagePending, plan[3].Status)

	plan, err = svc.RemoveStage(ctx, itemID, 1)
	require.NoError(t, err)
	require.Len(t, plan, 3)
	assert.Equal(t, "Cutting", plan[0].Name)
	assert.Equal(t, "Painting", plan[1].Name)
	assert.Equal(t, "Inspection", plan[2].Name)
}

func TestEditStage_ToggleBusinessDaysRecomputesWholePlan(t *testing.T) {
	svc, _, itemID := newPlanService(t)
	ctx := context.Background()

	_, err := svc.EnsurePlan(ctx, itemID)
	require.NoError(t, err)

	start := "2025-03-07" // Friday
	_, err = svc.EditStage(ctx, itemID, 0, StageEdit{StartDate: &start})
	require.NoError(t, err)

	// In calendar mode Welding starts Saturday and runs through the
	// weekend instead of waiting for Monday.
	toCalendar := false
	plan, err := svc.EditStage(ctx, itemID, 1, StageEdit{UseBusinessDays: &toCalendar})
	require.NoError(t, err)
	require.NotNil(t, plan[1].StartDate)
	assert.Equal(t, "2025-03-08", plan[1].StartDate.Format(domain.DateLayout))
	require.NotNil(t, plan[1].CompletedDate)
	assert.Equal(t, "2025-03-10", plan[1].CompletedDate.Format(domain.DateLayout))
}
