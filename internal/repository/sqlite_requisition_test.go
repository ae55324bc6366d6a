package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pmirek/fabops/internal/domain"
	"github.com/pmirek/fabops/internal/repository"
	"github.com/pmirek/fabops/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRequisition(t *testing.T, repo *repository.SQLiteRequisitionRepo, number string) *domain.Requisition {
	t.Helper()
	now := time.Date(2025, time.February, 3, 10, 0, 0, 0, time.UTC)
	req := &domain.Requisition{
		ID:          uuid.New().String(),
		Number:      number,
		Status:      domain.RequisitionOrdered,
		RequestedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
		Lines: []*domain.RequisitionLine{
			{ID: uuid.New().String(), Material: "S355 plate", Spec: "10mm", Quantity: 12, Unit: "pcs"},
			{ID: uuid.New().String(), Material: "M12 bolts", Spec: "8.8", Quantity: 200, Unit: "pcs"},
		},
	}
	require.NoError(t, repo.Create(context.Background(), req))
	return req
}

func TestRequisition_RoundTripWithLines(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRequisitionRepo(database)
	req := makeRequisition(t, repo, "REQ-001")

	got, err := repo.GetByID(context.Background(), req.ID)
	require.NoError(t, err)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, domain.RequisitionOrdered, got.Status)
	assert.Equal(t, "M12 bolts", got.Lines[0].Material, "lines ordered by material")
	assert.Equal(t, 200.0, got.Lines[0].Quantity)
	assert.Nil(t, got.Lines[0].ReceivedAt)
}

func TestRequisition_UpdateLineReceiving(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRequisitionRepo(database)
	req := makeRequisition(t, repo, "REQ-002")
	ctx := context.Background()

	line := req.Lines[0]
	received := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)
	line.ReceivedQty = 12
	line.ReceivedAt = &received
	require.NoError(t, repo.UpdateLine(ctx, line))

	got, err := repo.GetByID(ctx, req.ID)
	require.NoError(t, err)
	var updated *domain.RequisitionLine
	for _, l := range got.Lines {
		if l.ID == line.ID {
			updated = l
		}
	}
	require.NotNil(t, updated)
	assert.Equal(t, 12.0, updated.ReceivedQty)
	require.NotNil(t, updated.ReceivedAt)
	assert.Equal(t, received, *updated.ReceivedAt)
}

func TestRequisition_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRequisitionRepo(database)

	_, err := repo.GetByID(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRequisition_ListExcludesClosedByDefault(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRequisitionRepo(database)
	ctx := context.Background()

	open := makeRequisition(t, repo, "REQ-003")
	closed := makeRequisition(t, repo, "REQ-004")
	closed.Status = domain.RequisitionReceived
	require.NoError(t, repo.Update(ctx, closed))

	got, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, open.ID, got[0].ID)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
