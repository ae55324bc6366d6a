package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pmirek/fabops/internal/domain"
	"github.com/pmirek/fabops/internal/service"
)

var orderStatusOrder = []domain.OrderStatus{
	domain.OrderOpen, domain.OrderInProduction, domain.OrderDelivered,
	domain.OrderClosed, domain.OrderCanceled,
}

var stageStatusOrder = []domain.StageStatus{
	domain.StagePending, domain.StageInProgress, domain.StageCompleted,
}

// RenderDashboard renders the shop performance snapshot.
func RenderDashboard(data *service.DashboardData) string {
	var b strings.Builder

	b.WriteString(Header("Orders") + "\n")
	for _, s := range orderStatusOrder {
		if n := data.OrdersByStatus[s]; n > 0 {
			b.WriteString(fmt.Sprintf("  %-16s %d\n", OrderStatusLabel(s), n))
		}
	}
	if len(data.OrdersByStatus) == 0 {
		b.WriteString(Dim("  No orders.") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(Header("Stages") + "\n")
	for _, s := range stageStatusOrder {
		if n := data.StagesByStatus[s]; n > 0 {
			b.WriteString(fmt.Sprintf("  %-28s %d\n", StageStatusLabel(s), n))
		}
	}
	if len(data.OverdueStages) > 0 {
		b.WriteString(fmt.Sprintf("  %s %d\n", StyleRed.Render("overdue"), len(data.OverdueStages)))
		headers := []string{"Stage", "Status", "Planned"}
		rows := make([][]string, 0, len(data.OverdueStages))
		for _, st := range data.OverdueStages {
			rows = append(rows, []string{st.Name, StageStatusLabel(st.Status), FormatDate(st.CompletedDate)})
		}
		b.WriteString("\n" + RenderTable(headers, rows))
	}
	b.WriteString("\n")

	b.WriteString(Header("Purchasing") + "\n")
	b.WriteString(fmt.Sprintf("  Open requisitions: %s\n\n", Bold(strconv.Itoa(data.OpenRequisitions))))

	b.WriteString(Header("Costs") + "\n")
	if len(data.CostTotals) == 0 {
		b.WriteString(Dim("  No cost entries.") + "\n")
		return b.String()
	}
	categories := make([]string, 0, len(data.CostTotals))
	for c := range data.CostTotals {
		categories = append(categories, string(c))
	}
	sort.Strings(categories)
	var total float64
	for _, c := range categories {
		amount := data.CostTotals[domain.CostCategory(c)]
		total += amount
		b.WriteString(fmt.Sprintf("  %-14s %12s\n", c, FormatMoney(amount)))
	}
	b.WriteString(fmt.Sprintf("  %-14s %12s\n", Bold("total"), Bold(FormatMoney(total))))
	return b.String()
}
