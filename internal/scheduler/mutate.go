package scheduler

import (
	"time"

	"github.com/pmirek/fabops/internal/calendar"
	"github.com/pmirek/fabops/internal/domain"
)

// Clock supplies "now" for completion-date defaults; injectable for tests.
type Clock func() time.Time

// Editor applies single-field stage edits and decides which downstream
// stages must be recomputed, so that no edit silently desynchronizes the
// stages after it. All methods mutate the plan in place; an out-of-range
// index is a no-op.
type Editor struct {
	prop *Propagator
	now  Clock
}

func NewEditor(cal *calendar.Calendar, now Clock) *Editor {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Editor{prop: NewPropagator(cal), now: now}
}

// Propagator exposes the underlying propagator for full-plan recomputes
// outside of field edits (e.g. after seeding a plan from a template).
func (e *Editor) Propagator() *Propagator {
	return e.prop
}

// SetDuration parses and stores a duration edit on stage k, then
// recomputes stage k and everything after it. Malformed input degrades to
// the minimum duration rather than failing.
func (e *Editor) SetDuration(plan []*domain.ProductionStage, k int, raw string) {
	if k < 0 || k >= len(plan) {
		return
	}
	plan[k].DurationDays = domain.ParseDurationDays(raw)
	e.prop.Recalculate(plan, k)
}

// SetStartDate stores a raw start-date edit on stage k (nil clears), then
// recomputes stage k and everything after it.
func (e *Editor) SetStartDate(plan []*domain.ProductionStage, k int, date *time.Time) {
	if k < 0 || k >= len(plan) {
		return
	}
	plan[k].StartDate = date
	e.prop.Recalculate(plan, k)
}

// SetUseBusinessDays toggles the schedule mode on stage k. A schedule-type
// change invalidates every chaining assumption, so the whole plan is
// recomputed from stage 0.
func (e *Editor) SetUseBusinessDays(plan []*domain.ProductionStage, k int, v bool) {
	if k < 0 || k >= len(plan) {
		return
	}
	plan[k].UseBusinessDays = v
	e.prop.RecalculateAll(plan)
}

// SetStatus stores a status edit on stage k. Moving to completed defaults
// an unset completion date to now; no recompute is triggered and no
// transition order is enforced.
func (e *Editor) SetStatus(plan []*domain.ProductionStage, k int, status domain.StageStatus) {
	if k < 0 || k >= len(plan) {
		return
	}
	plan[k].Status = status
	if status == domain.StageCompleted && plan[k].CompletedDate == nil {
		t := domain.Midnight(e.now())
		plan[k].CompletedDate = &t
	}
}

// SetName renames stage k verbatim; names carry no scheduling meaning.
func (e *Editor) SetName(plan []*domain.ProductionStage, k int, name string) {
	if k < 0 || k >= len(plan) {
		return
	}
	plan[k].Name = name
}

// AppendStage adds a new pending stage with zero duration to the end of
// the plan. The stage has no dates yet, so nothing is recomputed.
func (e *Editor) AppendStage(plan []*domain.ProductionStage, name string) []*domain.ProductionStage {
	return append(plan, &domain.ProductionStage{
		Name:   name,
		Status: domain.StagePending,
	})
}

// RemoveStage drops stage k. Downstream stages keep whatever dates they
// had; the caller accepts the staleness until the next recompute.
func (e *Editor) RemoveStage(plan []*domain.ProductionStage, k int) []*domain.ProductionStage {
	if k < 0 || k >= len(plan) {
		return plan
	}
	return append(plan[:k], plan[k+1:]...)
}
