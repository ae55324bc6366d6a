package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pmirek/fabops/internal/domain"
	"github.com/pmirek/fabops/internal/log"
	"github.com/pmirek/fabops/internal/repository"
	"github.com/pmirek/fabops/internal/scheduler"
)

type planService struct {
	plans     repository.PlanRepo
	orders    repository.OrderRepo
	templates repository.TemplateRepo
	editor    *scheduler.Editor
}

// NewPlanService wires the plan store, the template source for seeding,
// and the scheduling editor that routes stage edits.
func NewPlanService(
	plans repository.PlanRepo,
	orders repository.OrderRepo,
	templates repository.TemplateRepo,
	editor *scheduler.Editor,
) PlanService {
	return &planService{plans: plans, orders: orders, templates: templates, editor: editor}
}

func (s *planService) GetPlan(ctx context.Context, itemID string) ([]*domain.ProductionStage, error) {
	return s.plans.GetPlan(ctx, itemID)
}

func (s *planService) EnsurePlan(ctx context.Context, itemID string) ([]*domain.ProductionStage, error) {
	plan, err := s.plans.GetPlan(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if len(plan) > 0 {
		return plan, nil
	}

	item, err := s.orders.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	tpl, err := s.templates.GetByProductType(ctx, item.ProductType)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// No template for this product: start with an empty plan and
			// let the user add stages by hand.
			return nil, nil
		}
		return nil, err
	}

	plan = tpl.Instantiate()
	if err := s.plans.ReplacePlan(ctx, itemID, plan); err != nil {
		return nil, fmt.Errorf("seeding plan from template: %w", err)
	}
	log.GetLogger().WithField("item", itemID).
		WithField("template", tpl.ProductType).
		Infof("seeded plan with %d stages", len(plan))
	return plan, nil
}

// EditStage applies one single-field edit to stage index and persists the
// full recomputed plan. The edit works on a copy so the stored plan is
// replaced atomically.
func (s *planService) EditStage(ctx context.Context, itemID string, index int, edit StageEdit) ([]*domain.ProductionStage, error) {
	plan, err := s.plans.GetPlan(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(plan) {
		return nil, fmt.Errorf("stage index %d out of range (plan has %d stages)", index, len(plan))
	}

	next := domain.ClonePlan(plan)
	switch {
	case edit.Duration != nil:
		s.editor.SetDuration(next, index, *edit.Duration)
	case edit.StartDate != nil:
		// The date boundary is explicit: a malformed date is an error to
		// the caller, an empty one clears the stage's schedule.
		date, err := domain.ParseDate(*edit.StartDate)
		if err != nil {
			return nil, err
		}
		s.editor.SetStartDate(next, index, date)
	case edit.UseBusinessDays != nil:
		s.editor.SetUseBusinessDays(next, index, *edit.UseBusinessDays)
	case edit.Status != nil:
		s.editor.SetStatus(next, index, *edit.Status)
	case edit.Name != nil:
		s.editor.SetName(next, index, *edit.Name)
	default:
		return nil, fmt.Errorf("empty stage edit")
	}

	if err := s.plans.ReplacePlan(ctx, itemID, next); err != nil {
		return nil, fmt.Errorf("saving plan: %w", err)
	}
	return next, nil
}

func (s *planService) AddStage(ctx context.Context, itemID string, name string) ([]*domain.ProductionStage, error) {
	plan, err := s.plans.GetPlan(ctx, itemID)
	if err != nil {
		return nil, err
	}
	next := s.editor.AppendStage(domain.ClonePlan(plan), name)
	if err := s.plans.ReplacePlan(ctx, itemID, next); err != nil {
		return nil, fmt.Errorf("saving plan: %w", err)
	}
	return next, nil
}

func (s *planService) RemoveStage(ctx context.Context, itemID string, index int) ([]*domain.ProductionStage, error) {
	plan, err := s.plans.GetPlan(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(plan) {
		return nil, fmt.Errorf("stage index %d out of range (plan has %d stages)", index, len(plan))
	}
	next := s.editor.RemoveStage(domain.ClonePlan(plan), index)
	if err := s.plans.ReplacePlan(ctx, itemID, next); err != nil {
		return nil, fmt.Errorf("saving plan: %w", err)
	}
	return next, nil
}
