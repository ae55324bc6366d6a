package formatter

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pmirek/fabops/internal/domain"
)

// FormatDate renders an optional date, or a dim dash when unset.
func FormatDate(d *time.Time) string {
	if d == nil {
		return StyleDim.Render("—")
	}
	return d.Format(domain.DateLayout)
}

// FormatDays renders a stage duration without trailing zeros (1, 2.5, 0.25).
func FormatDays(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}

// FormatMode renders the day-counting mode of a stage.
func FormatMode(useBusinessDays bool) string {
	if useBusinessDays {
		return "business"
	}
	return "calendar"
}

// FormatMoney renders an amount with two decimals.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
