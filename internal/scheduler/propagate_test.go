package scheduler

import (
	"testing"
	"time"

	"github.com/pmirek/fabops/internal/calendar"
	"github.com/pmirek/fabops/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stage(name string, duration float64, business bool) *domain.ProductionStage {
	return &domain.ProductionStage{
		Name:            name,
		Status:          domain.StagePending,
		DurationDays:    duration,
		UseBusinessDays: business,
	}
}

func anchoredPlan(start time.Time, stages ...*domain.ProductionStage) []*domain.ProductionStage {
	stages[0].StartDate = &start
	return stages
}

func TestRecalculate_SingleDayStageCompletesSameDay(t *testing.T) {
	p := NewPropagator(calendar.Default())

	// Thursday 2025-01-02, one business day.
	plan := anchoredPlan(date(2025, time.January, 2), stage("Cutting", 1, true))
	p.RecalculateAll(plan)

	require.NotNil(t, plan[0].CompletedDate)
	assert.Equal(t, date(2025, time.January, 2), *plan[0].CompletedDate, "a stage of one day or less never spans to the next day")
}

func TestRecalculate_ChainSkipsWeekend(t *testing.T) {
	p := NewPropagator(calendar.Default())

	// Stage 0 completes Thursday 2025-01-02; stage 1 runs 2 business days.
	plan := anchoredPlan(date(2025, time.January, 2),
		stage("Cutting", 1, true),
		stage("Welding", 2, true),
	)
	p.RecalculateAll(plan)

	require.NotNil(t, plan[1].StartDate)
	require.NotNil(t, plan[1].CompletedDate)
	assert.Equal(t, date(2025, time.January, 3), *plan[1].StartDate, "next business day after Thursday")
	assert.Equal(t, date(2025, time.January, 7), *plan[1].CompletedDate, "Fri + 2 business days lands Tuesday")
}

func TestRecalculate_CalendarModeCountsWeekends(t *testing.T) {
	p := NewPropagator(calendar.Default())

	plan := anchoredPlan(date(2025, time.January, 2),
		stage("Paint cure", 3, false),
	)
	p.RecalculateAll(plan)

	require.NotNil(t, plan[0].CompletedDate)
	assert.Equal(t, date(2025, time.January, 5), *plan[0].CompletedDate, "calendar mode spans straight over the weekend")
}

func TestRecalculate_CalendarModeChainsNextCalendarDay(t *testing.T) {
	p := NewPropagator(calendar.Default())

	// Stage 0 completes Friday; a calendar-mode stage 1 starts Saturday.
	plan := anchoredPlan(date(2025, time.January, 3),
		stage("Cutting", 1, true),
		stage("Curing", 2, false),
	)
	p.RecalculateAll(plan)

	require.NotNil(t, plan[1].StartDate)
	assert.Equal(t, date(2025, time.January, 4), *plan[1].StartDate)
	assert.Equal(t, date(2025, time.January, 6), *plan[1].CompletedDate)
}

func TestRecalculate_FractionalDurationClampedToFloor(t *testing.T) {
	p := NewPropagator(calendar.Default())

	plan := anchoredPlan(date(2025, time.January, 2), stage("Deburr", 0, true))
	p.RecalculateAll(plan)

	require.NotNil(t, plan[0].CompletedDate)
	assert.Equal(t, date(2025, time.January, 2), *plan[0].CompletedDate)
}

func TestRecalculate_MissingAnchorClearsDownstream(t *testing.T) {
	p := NewPropagator(calendar.Default())

	later := date(2025, time.February, 10)
	plan := []*domain.ProductionStage{
		stage("Cutting", 1, true), // no start date
		stage("Welding", 2, true),
		stage("Assembly", 1, true),
	}
	plan[1].StartDate = &later
	plan[1].CompletedDate = &later

	p.RecalculateAll(plan)

	for i, st := range plan {
		assert.Nil(t, st.StartDate, "stage %d start", i)
		assert.Nil(t, st.CompletedDate, "stage %d completed", i)
	}
}

func TestRecalculate_PartialLeavesEarlierStagesUntouched(t *testing.T) {
	p := NewPropagator(calendar.Default())

	plan := anchoredPlan(date(2025, time.January, 2),
		stage("Cutting", 1, true),
		stage("Welding", 2, true),
		stage("Machining", 1, true),
		stage("Assembly", 1, true),
		stage("Inspection", 1, true),
	)
	p.RecalculateAll(plan)

	start0, completed0 := *plan[0].StartDate, *plan[0].CompletedDate
	start1, completed1 := *plan[1].StartDate, *plan[1].CompletedDate

	// Edit stage 2's duration and recompute from there.
	plan[2].DurationDays = 3
	p.Recalculate(plan, 2)

	assert.Equal(t, start0, *plan[0].StartDate)
	assert.Equal(t, completed0, *plan[0].CompletedDate)
	assert.Equal(t, start1, *plan[1].StartDate)
	assert.Equal(t, completed1, *plan[1].CompletedDate)

	// Stage 2 kept its start but grew; 3 and 4 moved with it.
	assert.Equal(t, date(2025, time.January, 8), *plan[2].StartDate)
	assert.Equal(t, date(2025, time.January, 13), *plan[2].CompletedDate, "Wed + 3 business days = Mon")
	assert.Equal(t, date(2025, time.January, 14), *plan[3].StartDate)
	assert.Equal(t, date(2025, time.January, 15), *plan[4].StartDate)
}

func TestRecalculate_PartialWithUnscheduledAnchorClearsForward(t *testing.T) {
	p := NewPropagator(calendar.Default())

	plan := anchoredPlan(date(2025, time.January, 2),
		stage("Cutting", 1, true),
		stage("Welding", 1, true),
		stage("Assembly", 1, true),
	)
	p.RecalculateAll(plan)

	plan[1].StartDate = nil
	p.Recalculate(plan, 1)

	assert.NotNil(t, plan[0].StartDate, "stage before the edit keeps its dates")
	assert.Nil(t, plan[1].CompletedDate)
	assert.Nil(t, plan[2].StartDate)
	assert.Nil(t, plan[2].CompletedDate)
}

func TestRecalculate_ChainingInvariant(t *testing.T) {
	cal := calendar.Default()
	p := NewPropagator(cal)

	plan := anchoredPlan(date(2025, time.March, 3),
		stage("Cutting", 1, true),
		stage("Welding", 2.5, true),
		stage("Curing", 2, false),
		stage("Machining", 4, true),
		stage("Inspection", 1, true),
	)
	p.RecalculateAll(plan)

	for i := 1; i < len(plan); i++ {
		prev, cur := plan[i-1], plan[i]
		require.NotNil(t, prev.CompletedDate, "stage %d", i-1)
		require.NotNil(t, cur.StartDate, "stage %d", i)

		if cur.UseBusinessDays {
			assert.Equal(t, cal.NextBusinessDay(*prev.CompletedDate), *cur.StartDate, "stage %d business chaining", i)
		} else {
			assert.Equal(t, prev.CompletedDate.AddDate(0, 0, 1), *cur.StartDate, "stage %d calendar chaining", i)
		}
		assert.True(t, cur.StartDate.After(*prev.CompletedDate), "stage %d must start after its predecessor completes", i)
	}
}

func TestRecalculate_Idempotent(t *testing.T) {
	p := NewPropagator(calendar.Default())

	plan := anchoredPlan(date(2025, time.April, 7),
		stage("Cutting", 0.5, true),
		stage("Drilling", 0.5, true),
		stage("Welding", 2, true),
		stage("Curing", 3, false),
		stage("Inspection", 1, true),
	)
	p.RecalculateAll(plan)
	first := domain.ClonePlan(plan)

	p.RecalculateAll(plan)

	for i := range plan {
		assert.Equal(t, *first[i].StartDate, *plan[i].StartDate, "stage %d start", i)
		assert.Equal(t, *first[i].CompletedDate, *plan[i].CompletedDate, "stage %d completed", i)
	}
}

func TestRecalculate_SubDayStagesShareOneWorkingDay(t *testing.T) {
	p := NewPropagator(calendar.Default())

	// Three half-day stages: the first two fill Monday, the third starts
	// Tuesday.
	plan := anchoredPlan(date(2025, time.March, 3),
		stage("Saw", 0.5, true),
		stage("Deburr", 0.5, true),
		stage("Drill", 0.5, true),
	)
	p.RecalculateAll(plan)

	assert.Equal(t, date(2025, time.March, 3), *plan[0].StartDate)
	assert.Equal(t, date(2025, time.March, 3), *plan[1].StartDate, "second half-day shares Monday")
	assert.Equal(t, date(2025, time.March, 3), *plan[1].CompletedDate)
	assert.Equal(t, date(2025, time.March, 4), *plan[2].StartDate, "accumulated day is full, advance to Tuesday")
}

func TestRecalculate_AccumulationCarriesRemainder(t *testing.T) {
	p := NewPropagator(calendar.Default())

	// 0.5 + 0.75 = 1.25: the second stage tips the day over; the 0.25
	// remainder seeds Tuesday, so a following 0.75 stage still fits there.
	plan := anchoredPlan(date(2025, time.March, 3),
		stage("Saw", 0.5, true),
		stage("Punch", 0.75, true),
		stage("Deburr", 0.75, true),
		stage("Tap", 0.5, true),
	)
	p.RecalculateAll(plan)

	assert.Equal(t, date(2025, time.March, 3), *plan[1].StartDate)
	assert.Equal(t, date(2025, time.March, 4), *plan[2].StartDate, "remainder day")
	// 0.25 + 0.75 = 1.0 fills Tuesday; the last stage moves to Wednesday.
	assert.Equal(t, date(2025, time.March, 5), *plan[3].StartDate)
}

func TestRecalculate_AccumulationSkipsWeekendOnAdvance(t *testing.T) {
	p := NewPropagator(calendar.Default())

	// Friday fills up; the next sub-day stage lands on Monday.
	plan := anchoredPlan(date(2025, time.March, 7),
		stage("Saw", 0.5, true),
		stage("Deburr", 0.5, true),
		stage("Drill", 0.5, true),
	)
	p.RecalculateAll(plan)

	assert.Equal(t, date(2025, time.March, 7), *plan[1].StartDate)
	assert.Equal(t, date(2025, time.March, 10), *plan[2].StartDate, "Saturday and Sunday are skipped")
}

func TestRecalculate_FullStageAfterPartialDayChainsFromSharedDay(t *testing.T) {
	cal := calendar.Default()
	p := NewPropagator(cal)

	plan := anchoredPlan(date(2025, time.March, 3),
		stage("Saw", 0.5, true),
		stage("Welding", 2, true),
	)
	p.RecalculateAll(plan)

	// The half day leaves Monday partially used; the full stage starts the
	// next business day regardless.
	assert.Equal(t, date(2025, time.March, 4), *plan[1].StartDate)
	assert.Equal(t, cal.AddBusinessDays(date(2025, time.March, 4), 2), *plan[1].CompletedDate)
}

func TestRecalculate_AnchorOnWeekendIsKept(t *testing.T) {
	p := NewPropagator(calendar.Default())

	// The anchor is user input and is not snapped to a business day.
	sat := date(2025, time.March, 8)
	plan := anchoredPlan(sat, stage("Cutting", 1, true), stage("Welding", 1, true))
	p.RecalculateAll(plan)

	assert.Equal(t, sat, *plan[0].StartDate)
	assert.Equal(t, sat, *plan[0].CompletedDate)
	assert.Equal(t, date(2025, time.March, 10), *plan[1].StartDate, "chaining still lands on a business day")
}

func TestRecalculate_EmptyAndOutOfRange(t *testing.T) {
	p := NewPropagator(calendar.Default())

	p.Recalculate(nil, 0)
	p.Recalculate([]*domain.ProductionStage{}, 0)

	plan := anchoredPlan(date(2025, time.March, 3), stage("Cutting", 1, true))
	p.Recalculate(plan, 5) // past the end: no-op
	assert.Equal(t, date(2025, time.March, 3), *plan[0].StartDate)
}
