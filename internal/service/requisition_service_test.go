package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmirek/fabops/internal/domain"
	"github.com/pmirek/fabops/internal/repository"
	"github.com/pmirek/fabops/internal/testutil"
)

func newRequisitionService(t *testing.T) RequisitionService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewRequisitionService(repository.NewSQLiteRequisitionRepo(database))
}

func makeRequisition(t *testing.T, svc RequisitionService) *domain.Requisition {
	t.Helper()
	req := &domain.Requisition{
		Number: "REQ-0007",
		Status: domain.RequisitionDraft,
		Lines: []*domain.RequisitionLine{
			{Material: "S355 plate", Spec: "10mm", Quantity: 4, Unit: "sheet"},
			{Material: "M12 bolts", Spec: "8.8 galvanized", Quantity: 200, Unit: "pcs"},
		},
	}
	require.NoError(t, svc.Create(context.Background(), req))
	return req
}

func TestRequisitionCreate_AssignsIDsAndDefaults(t *testing.T) {
	svc := newRequisitionService(t)
	req := makeRequisition(t, svc)

	assert.NotEmpty(t, req.ID)
	assert.Equal(t, domain.RequisitionDraft, req.Status)
	assert.False(t, req.RequestedAt.IsZero())
	for _, l := range req.Lines {
		assert.NotEmpty(t, l.ID)
		assert.Equal(t, req.ID, l.RequisitionID)
	}
}

func TestRequisitionReceive_PartialThenFull(t *testing.T) {
	svc := newRequisitionService(t)
	ctx := context.Background()
	req := makeRequisition(t, svc)

	require.NoError(t, svc.MarkOrdered(ctx, req.ID))

	// Lines come back ordered by material, so bolts precede plate.
	stored, err := svc.GetByID(ctx, req.ID)
	require.NoError(t, err)
	require.Len(t, stored.Lines, 2)
	bolts, plate := stored.Lines[0], stored.Lines[1]
	require.Equal(t, "M12 bolts", bolts.Material)

	day := time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Receive(ctx, req.ID, []ReceiptLine{{LineID: bolts.ID, Quantity: 200}}, day)
	require.NoError(t, err)
	assert.Equal(t, domain.RequisitionPartial, updated.Status)

	updated, err = svc.Receive(ctx, req.ID, []ReceiptLine{{LineID: plate.ID, Quantity: 4}}, day.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, domain.RequisitionReceived, updated.Status)

	stored, err = svc.GetByID(ctx, req.ID)
	require.NoError(t, err)
	for _, l := range stored.Lines {
		assert.Zero(t, l.Outstanding())
		require.NotNil(t, l.ReceivedAt)
	}
}

func TestRequisitionReceive_UnknownLine(t *testing.T) {
	svc := newRequisitionService(t)
	ctx := context.Background()
	req := makeRequisition(t, svc)
	require.NoError(t, svc.MarkOrdered(ctx, req.ID))

	_, err := svc.Receive(ctx, req.ID, []ReceiptLine{{LineID: "nope", Quantity: 1}}, time.Now())
	assert.Error(t, err)
}

func TestRequisitionReceive_DraftStaysDraft(t *testing.T) {
	svc := newRequisitionService(t)
	ctx := context.Background()
	req := makeRequisition(t, svc)

	stored, err := svc.GetByID(ctx, req.ID)
	require.NoError(t, err)

	updated, err := svc.Receive(ctx, req.ID, []ReceiptLine{{LineID: stored.Lines[0].ID, Quantity: 1}}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, domain.RequisitionDraft, updated.Status)
}

func TestRequisitionCancel(t *testing.T) {
	svc := newRequisitionService(t)
	ctx := context.Background()
	req := makeRequisition(t, svc)

	require.NoError(t, svc.Cancel(ctx, req.ID))

	open, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, open)

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
