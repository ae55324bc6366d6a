package domain

import "time"

// PlanTemplate is a per-product default stage list. When an order item has
// no production plan, the template for its product type seeds one.
type PlanTemplate struct {
	ID          string
	ProductType string
	Name        string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Stages []*TemplateStage
}

type TemplateStage struct {
	Name            string
	DurationDays    float64
	UseBusinessDays bool
}

// Instantiate builds a fresh, unscheduled production plan from the
// template's stage list.
func (t *PlanTemplate) Instantiate() []*ProductionStage {
	plan := make([]*ProductionStage, 0, len(t.Stages))
	for _, ts := range t.Stages {
		plan = append(plan, &ProductionStage{
			Name:            ts.Name,
			Status:          StagePending,
			DurationDays:    ts.DurationDays,
			UseBusinessDays: ts.UseBusinessDays,
		})
	}
	return plan
}
