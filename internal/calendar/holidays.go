package calendar

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// Built-in shop holiday table, 2024 through 2026 (US federal holidays as
// observed). The table is a fixed list for known years: dates outside it
// have no holidays and weekends alone apply. Extend by adding entries or
// by injecting a custom list via New.
var defaultHolidayDates = []string{
	// 2024
	"2024-01-01", // New Year's Day
	"2024-01-15", // Martin Luther King Jr. Day
	"2024-02-19", // Washington's Birthday
	"2024-05-27", // Memorial Day
	"2024-06-19", // Juneteenth
	"2024-07-04", // Independence Day
	"2024-09-02", // Labor Day
	"2024-10-14", // Columbus Day
	"2024-11-11", // Veterans Day
	"2024-11-28", // Thanksgiving
	"2024-12-25", // Christmas Day
	// 2025
	"2025-01-01",
	"2025-01-20",
	"2025-02-17",
	"2025-05-26",
	"2025-06-19",
	"2025-07-04",
	"2025-09-01",
	"2025-10-13",
	"2025-11-11",
	"2025-11-27",
	"2025-12-25",
	// 2026
	"2026-01-01",
	"2026-01-19",
	"2026-02-16",
	"2026-05-25",
	"2026-06-19",
	"2026-07-03", // observed; July 4 falls on a Saturday
	"2026-09-07",
	"2026-10-12",
	"2026-11-11",
	"2026-11-26",
	"2026-12-25",
}

// ParseHolidayList reads a custom holiday list: one YYYY-MM-DD date per
// line, blank lines and #-comments ignored.
func ParseHolidayList(r io.Reader) ([]time.Time, error) {
	var out []time.Time
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q is not a YYYY-MM-DD date", line, s)
		}
		out = append(out, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DefaultHolidays returns the built-in holiday table as dates.
func DefaultHolidays() []time.Time {
	out := make([]time.Time, 0, len(defaultHolidayDates))
	for _, s := range defaultHolidayDates {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			continue // table is static; a bad entry is a programming error, skip it
		}
		out = append(out, t)
	}
	return out
}
