// Package scheduler computes start/completion dates for production plans
// and routes stage edits to the right recompute strategy. A plan is a
// strict chain: stage i starts from stage i-1's completion date, with
// stage 0 anchored by a manually set start date.
package scheduler

import (
	"math"
	"time"

	"github.com/pmirek/fabops/internal/calendar"
	"github.com/pmirek/fabops/internal/domain"
)

// Propagator fills in stage dates against a business-day calendar.
// Its methods mutate the plan slice in place and never fail: anything
// unschedulable resolves to cleared dates.
type Propagator struct {
	cal *calendar.Calendar
}

func NewPropagator(cal *calendar.Calendar) *Propagator {
	return &Propagator{cal: cal}
}

// RecalculateAll recomputes the whole plan from stage 0's anchor date.
func (p *Propagator) RecalculateAll(plan []*domain.ProductionStage) {
	p.Recalculate(plan, 0)
}

// Recalculate recomputes stage from's completion date from its own start
// date, then chains forward through every later stage, overwriting their
// dates. Stages before from are untouched. If the anchor stage has no
// start date, dates from that stage onward are cleared instead.
//
// Business-day stages with an effective duration under one day accumulate
// on a shared working day: the day advances only once the accumulated
// fraction reaches a full day, and the remainder seeds the next day. The
// same policy applies whether from is 0 or a midpoint stage.
func (p *Propagator) Recalculate(plan []*domain.ProductionStage, from int) {
	if from < 0 {
		from = 0
	}
	if from >= len(plan) {
		return
	}

	anchor := plan[from]
	if anchor.StartDate == nil {
		clearFrom(plan, from)
		return
	}

	d := anchor.EffectiveDuration()
	completed := p.completionDate(*anchor.StartDate, d, anchor.UseBusinessDays)
	anchor.CompletedDate = &completed

	// acc tracks the consumed fraction of accDay, the working day shared
	// by consecutive sub-day business stages.
	var accDay *time.Time
	var acc float64
	if anchor.UseBusinessDays && d < 1 {
		day := *anchor.StartDate
		accDay, acc = &day, d
	}

	prevCompleted := anchor.CompletedDate

	for i := from + 1; i < len(plan); i++ {
		st := plan[i]
		if prevCompleted == nil {
			// No anchor to chain from: the unscheduled state propagates.
			st.ClearDates()
			continue
		}

		d := st.EffectiveDuration()

		if st.UseBusinessDays && d < 1 {
			if accDay == nil || acc >= 1 {
				var day time.Time
				if accDay != nil {
					day = p.cal.NextBusinessDay(*accDay)
					acc -= 1
				} else {
					day = p.cal.NextBusinessDay(*prevCompleted)
					acc = 0
				}
				accDay = &day
			}
			start := *accDay
			st.StartDate = &start
			end := start
			st.CompletedDate = &end
			acc += d
			prevCompleted = st.CompletedDate
			continue
		}

		// Full or calendar-mode stage: normal chaining, accumulation resets.
		accDay, acc = nil, 0

		var start time.Time
		if st.UseBusinessDays {
			start = p.cal.NextBusinessDay(*prevCompleted)
		} else {
			start = prevCompleted.AddDate(0, 0, 1)
		}
		completed := p.completionDate(start, d, st.UseBusinessDays)
		st.StartDate = &start
		st.CompletedDate = &completed
		prevCompleted = st.CompletedDate
	}
}

// completionDate applies the single-stage completion rule: a stage of one
// day or less finishes the day it starts; longer stages span ceil(d) days,
// counted on the calendar or on business days per the stage's mode.
func (p *Propagator) completionDate(start time.Time, d float64, useBusinessDays bool) time.Time {
	if d <= 1 {
		return start
	}
	span := int(math.Ceil(d))
	if !useBusinessDays {
		return start.AddDate(0, 0, span)
	}
	return p.cal.AddBusinessDays(start, span)
}

// clearFrom clears the anchor's completion date and all dates after it.
func clearFrom(plan []*domain.ProductionStage, from int) {
	plan[from].CompletedDate = nil
	for i := from + 1; i < len(plan); i++ {
		plan[i].ClearDates()
	}
}
