package service

import (
	"context"
	"time"

	"github.com/pmirek/fabops/internal/domain"
	"github.com/pmirek/fabops/internal/repository"
)

type dashboardService struct {
	orders       repository.OrderRepo
	plans        repository.PlanRepo
	requisitions repository.RequisitionRepo
	costs        repository.CostRepo
}

func NewDashboardService(
	orders repository.OrderRepo,
	plans repository.PlanRepo,
	requisitions repository.RequisitionRepo,
	costs repository.CostRepo,
) DashboardService {
	return &dashboardService{orders: orders, plans: plans, requisitions: requisitions, costs: costs}
}

// Snapshot aggregates the shop-floor view: order and stage counts,
// stages past their completion date, open requisitions, and cost totals
// across all orders.
func (s *dashboardService) Snapshot(ctx context.Context, today time.Time) (*DashboardData, error) {
	data := &DashboardData{
		OrdersByStatus: make(map[domain.OrderStatus]int),
	}

	orders, err := s.orders.List(ctx, true)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		data.OrdersByStatus[o.Status]++
	}

	data.StagesByStatus, err = s.plans.CountStagesByStatus(ctx)
	if err != nil {
		return nil, err
	}

	data.OverdueStages, err = s.plans.ListOverdueStages(ctx, domain.Midnight(today).Format(domain.DateLayout))
	if err != nil {
		return nil, err
	}

	open, err := s.requisitions.List(ctx, false)
	if err != nil {
		return nil, err
	}
	data.OpenRequisitions = len(open)

	data.CostTotals, err = s.costs.TotalsByCategory(ctx, "")
	if err != nil {
		return nil, err
	}
	return data, nil
}
