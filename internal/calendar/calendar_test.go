package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsHoliday_MatchesByCalendarDay(t *testing.T) {
	cal := Default()

	assert.True(t, cal.IsHoliday(date(2025, time.January, 1)))
	// Time of day must not matter.
	assert.True(t, cal.IsHoliday(time.Date(2025, time.July, 4, 14, 30, 0, 0, time.UTC)))
	assert.False(t, cal.IsHoliday(date(2025, time.January, 2)))
}

func TestIsHoliday_OutOfTableYearHasNone(t *testing.T) {
	cal := Default()

	// 2030 is outside the table: Jan 1 is just a Tuesday.
	assert.False(t, cal.IsHoliday(date(2030, time.January, 1)))
	assert.True(t, cal.IsBusinessDay(date(2030, time.January, 1)))
}

func TestIsBusinessDay_Weekends(t *testing.T) {
	cal := Default()

	assert.False(t, cal.IsBusinessDay(date(2025, time.January, 4)), "Saturday")
	assert.False(t, cal.IsBusinessDay(date(2025, time.January, 5)), "Sunday")
	assert.True(t, cal.IsBusinessDay(date(2025, time.January, 6)), "Monday")
}

func TestNextBusinessDay_NeverReturnsInput(t *testing.T) {
	cal := Default()

	// Thursday -> Friday, even though Thursday is itself a business day.
	got := cal.NextBusinessDay(date(2025, time.January, 2))
	assert.Equal(t, date(2025, time.January, 3), got)
}

func TestNextBusinessDay_SkipsWeekendAndHoliday(t *testing.T) {
	cal := Default()

	// Friday -> Monday.
	assert.Equal(t, date(2025, time.January, 6), cal.NextBusinessDay(date(2025, time.January, 3)))
	// Dec 24 2025 (Wed) -> Dec 26 (Fri), skipping Christmas.
	assert.Equal(t, date(2025, time.December, 26), cal.NextBusinessDay(date(2025, time.December, 24)))
	// Friday before MLK Day 2025 (Jan 20, Monday) -> Tuesday Jan 21.
	assert.Equal(t, date(2025, time.January, 21), cal.NextBusinessDay(date(2025, time.January, 17)))
}

func TestNextBusinessDay_AlwaysLandsOnBusinessDay(t *testing.T) {
	cal := Default()

	d := date(2024, time.December, 20)
	for i := 0; i < 60; i++ {
		next := cal.NextBusinessDay(d)
		assert.True(t, cal.IsBusinessDay(next), "NextBusinessDay(%s) = %s", d.Format("2006-01-02"), next.Format("2006-01-02"))
		assert.True(t, next.After(d), "must move strictly forward")
		d = d.AddDate(0, 0, 1)
	}
}

func TestPreviousBusinessDay(t *testing.T) {
	cal := Default()

	// Monday -> Friday.
	assert.Equal(t, date(2025, time.January, 3), cal.PreviousBusinessDay(date(2025, time.January, 6)))
	// Jan 2 2025 -> Dec 31 2024, skipping New Year's Day.
	assert.Equal(t, date(2024, time.December, 31), cal.PreviousBusinessDay(date(2025, time.January, 2)))
}

func TestAddBusinessDays_ZeroReturnsStart(t *testing.T) {
	cal := Default()

	sat := date(2025, time.January, 4)
	assert.Equal(t, sat, cal.AddBusinessDays(sat, 0), "n=0 returns input even on a weekend")
}

func TestAddBusinessDays_SkipsWeekend(t *testing.T) {
	cal := Default()

	// Friday Jan 3 + 2 business days: Mon Jan 6, Tue Jan 7.
	assert.Equal(t, date(2025, time.January, 7), cal.AddBusinessDays(date(2025, time.January, 3), 2))
}

func TestAddBusinessDays_Negative(t *testing.T) {
	cal := Default()

	// Tuesday Jan 7 - 2 business days: Mon Jan 6, Fri Jan 3.
	assert.Equal(t, date(2025, time.January, 3), cal.AddBusinessDays(date(2025, time.January, 7), -2))
}

func TestAddBusinessDays_ReachableByIncrements(t *testing.T) {
	cal := Default()

	start := date(2025, time.March, 10)
	for n := 1; n <= 15; n++ {
		got := cal.AddBusinessDays(start, n)
		require.True(t, cal.IsBusinessDay(got), "n=%d must land on a business day", n)

		// Walk n single steps and compare.
		step := start
		for i := 0; i < n; i++ {
			step = cal.NextBusinessDay(step)
		}
		assert.Equal(t, step, got, "n=%d", n)
	}
}

func TestNew_InjectedHolidays(t *testing.T) {
	shopClosure := date(2025, time.August, 13) // a Wednesday
	cal := New([]time.Time{shopClosure})

	assert.True(t, cal.IsHoliday(shopClosure))
	assert.False(t, cal.IsBusinessDay(shopClosure))
	assert.False(t, cal.IsHoliday(date(2025, time.January, 1)), "default table not included")
}

func TestParseHolidayList(t *testing.T) {
	input := strings.NewReader(`# shop closures
2025-08-13

2025-12-24
`)
	holidays, err := ParseHolidayList(input)
	require.NoError(t, err)
	require.Len(t, holidays, 2)
	assert.Equal(t, date(2025, time.August, 13), holidays[0])
	assert.Equal(t, date(2025, time.December, 24), holidays[1])
}

func TestParseHolidayList_BadDate(t *testing.T) {
	_, err := ParseHolidayList(strings.NewReader("13.08.2025\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}
