package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pmirek/fabops/internal/domain"
	"github.com/pmirek/fabops/internal/repository"
)

type costService struct {
	costs repository.CostRepo
}

func NewCostService(costs repository.CostRepo) CostService {
	return &costService{costs: costs}
}

func (s *costService) Add(ctx context.Context, c *domain.CostEntry) error {
	if c.Amount < 0 {
		return fmt.Errorf("cost amount cannot be negative")
	}
	if !domain.ValidCostCategories[string(c.Category)] {
		return fmt.Errorf("invalid cost category: %s", c.Category)
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	if c.IncurredOn.IsZero() {
		c.IncurredOn = domain.Midnight(now)
	}
	return s.costs.Create(ctx, c)
}

func (s *costService) ListByOrder(ctx context.Context, orderID string) ([]*domain.CostEntry, error) {
	return s.costs.ListByOrder(ctx, orderID)
}

func (s *costService) TotalsByCategory(ctx context.Context, orderID string) (map[domain.CostCategory]float64, error) {
	return s.costs.TotalsByCategory(ctx, orderID)
}

func (s *costService) Delete(ctx context.Context, id string) error {
	return s.costs.Delete(ctx, id)
}
