// Package calendar classifies dates as working or non-working days and
// steps between them. A working day is any weekday that is not in the
// configured holiday list.
package calendar

import "time"

// Calendar answers business-day questions against an injected holiday
// list. Dates in years the list doesn't cover are classified by weekday
// alone; the table is deliberately finite and is not extrapolated.
type Calendar struct {
	holidays map[string]bool
}

// New builds a Calendar from a list of holiday dates. Only the calendar
// day matters; any time-of-day component is ignored.
func New(holidays []time.Time) *Calendar {
	set := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		set[dayKey(h)] = true
	}
	return &Calendar{holidays: set}
}

// Default returns a Calendar loaded with the built-in national holiday
// table (see holidays.go for the covered years).
func Default() *Calendar {
	return New(DefaultHolidays())
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// IsHoliday reports whether the date matches a listed holiday by calendar
// day, ignoring time of day.
func (c *Calendar) IsHoliday(t time.Time) bool {
	return c.holidays[dayKey(t)]
}

// IsBusinessDay reports whether the date is a weekday and not a holiday.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !c.IsHoliday(t)
}

// NextBusinessDay returns the first business day strictly after t.
// Even if t itself is a business day, the result is always later than t.
func (c *Calendar) NextBusinessDay(t time.Time) time.Time {
	d := t.AddDate(0, 0, 1)
	for !c.IsBusinessDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// PreviousBusinessDay returns the first business day strictly before t.
func (c *Calendar) PreviousBusinessDay(t time.Time) time.Time {
	d := t.AddDate(0, 0, -1)
	for !c.IsBusinessDay(d) {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// AddBusinessDays walks n business days from start, one calendar day at a
// time, counting a step only when it lands on a business day. n == 0
// returns start unchanged; negative n walks backward.
func (c *Calendar) AddBusinessDays(start time.Time, n int) time.Time {
	if n == 0 {
		return start
	}
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	d := start
	for remaining := n; remaining > 0; {
		d = d.AddDate(0, 0, step)
		if c.IsBusinessDay(d) {
			remaining--
		}
	}
	return d
}
