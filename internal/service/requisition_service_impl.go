package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pmirek/fabops/internal/domain"
	"github.com/pmirek/fabops/internal/log"
	"github.com/pmirek/fabops/internal/repository"
)

type requisitionService struct {
	requisitions repository.RequisitionRepo
}

func NewRequisitionService(requisitions repository.RequisitionRepo) RequisitionService {
	return &requisitionService{requisitions: requisitions}
}

func (s *requisitionService) Create(ctx context.Context, r *domain.Requisition) error {
	if r.Number == "" {
		return fmt.Errorf("requisition number is required")
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	if r.RequestedAt.IsZero() {
		r.RequestedAt = now
	}
	if r.Status == "" {
		r.Status = domain.RequisitionDraft
	}
	for _, l := range r.Lines {
		if l.ID == "" {
			l.ID = uuid.New().String()
		}
		l.RequisitionID = r.ID
	}
	return s.requisitions.Create(ctx, r)
}

func (s *requisitionService) GetByID(ctx context.Context, id string) (*domain.Requisition, error) {
	return s.requisitions.GetByID(ctx, id)
}

func (s *requisitionService) List(ctx context.Context, includeClosed bool) ([]*domain.Requisition, error) {
	return s.requisitions.List(ctx, includeClosed)
}

func (s *requisitionService) MarkOrdered(ctx context.Context, id string) error {
	r, err := s.requisitions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	r.Status = domain.RequisitionOrdered
	r.UpdatedAt = time.Now().UTC()
	return s.requisitions.Update(ctx, r)
}

// Receive records received quantities against lines and rederives the
// requisition status from the resulting line state.
func (s *requisitionService) Receive(ctx context.Context, id string, receipts []ReceiptLine, receivedOn time.Time) (*domain.Requisition, error) {
	r, err := s.requisitions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.RequisitionLine, len(r.Lines))
	for _, l := range r.Lines {
		byID[l.ID] = l
	}

	for _, rec := range receipts {
		l, ok := byID[rec.LineID]
		if !ok {
			return nil, fmt.Errorf("line %s not on requisition %s", rec.LineID, r.Number)
		}
		if rec.Quantity <= 0 {
			continue
		}
		l.ReceivedQty += rec.Quantity
		d := domain.Midnight(receivedOn)
		l.ReceivedAt = &d
		if err := s.requisitions.UpdateLine(ctx, l); err != nil {
			return nil, err
		}
	}

	r.Status = r.DeriveStatus()
	r.UpdatedAt = time.Now().UTC()
	if err := s.requisitions.Update(ctx, r); err != nil {
		return nil, err
	}

	log.GetLogger().WithField("requisition", r.Number).
		WithField("status", r.Status).
		Info("recorded material receipt")
	return r, nil
}

func (s *requisitionService) Cancel(ctx context.Context, id string) error {
	r, err := s.requisitions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	r.Status = domain.RequisitionCanceled
	r.UpdatedAt = time.Now().UTC()
	return s.requisitions.Update(ctx, r)
}
