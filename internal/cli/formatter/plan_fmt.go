package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pmirek/fabops/internal/domain"
)

// RenderPlan renders a production plan as a numbered stage table.
// Stage numbers are 1-based for display; commands take the same numbers.
func RenderPlan(plan []*domain.ProductionStage) string {
	if len(plan) == 0 {
		return Dim("No stages planned.") + "\n"
	}

	headers := []string{"#", "Stage", "Status", "Start", "Completed", "Days", "Mode"}
	rows := make([][]string, 0, len(plan))
	for i, st := range plan {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			st.Name,
			StageStatusLabel(st.Status),
			FormatDate(st.StartDate),
			FormatDate(st.CompletedDate),
			FormatDays(st.EffectiveDuration()),
			FormatMode(st.UseBusinessDays),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	if last := plan[len(plan)-1]; last.CompletedDate != nil {
		b.WriteString(fmt.Sprintf("\nPlanned completion: %s\n", Bold(last.CompletedDate.Format(domain.DateLayout))))
	}
	return b.String()
}
