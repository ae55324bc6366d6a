package domain

import "time"

// MinStageDuration is the smallest effective stage duration in days:
// one hour of an eight-hour working day.
const MinStageDuration = 0.125

// ProductionStage is one step in an order item's production plan.
// StartDate and CompletedDate are nil while the stage is unscheduled.
type ProductionStage struct {
	Name            string
	Status          StageStatus
	StartDate       *time.Time
	CompletedDate   *time.Time
	DurationDays    float64
	UseBusinessDays bool
}

// EffectiveDuration returns DurationDays clamped to the MinStageDuration
// floor. Stored durations may be zero (a freshly appended stage); the
// scheduler always works with the clamped value.
func (s *ProductionStage) EffectiveDuration() float64 {
	if s.DurationDays < MinStageDuration {
		return MinStageDuration
	}
	return s.DurationDays
}

// Scheduled reports whether the stage has a start date.
func (s *ProductionStage) Scheduled() bool {
	return s.StartDate != nil
}

// ClearDates resets both dates to the unscheduled state.
func (s *ProductionStage) ClearDates() {
	s.StartDate = nil
	s.CompletedDate = nil
}

// ClonePlan deep-copies a plan so a recompute can replace the caller's
// slice atomically. Stages are copied by value, including date pointers.
func ClonePlan(plan []*ProductionStage) []*ProductionStage {
	out := make([]*ProductionStage, len(plan))
	for i, st := range plan {
		c := *st
		if st.StartDate != nil {
			d := *st.StartDate
			c.StartDate = &d
		}
		if st.CompletedDate != nil {
			d := *st.CompletedDate
			c.CompletedDate = &d
		}
		out[i] = &c
	}
	return out
}
