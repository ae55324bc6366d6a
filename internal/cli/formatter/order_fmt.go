package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pmirek/fabops/internal/domain"
)

// RenderOrderList renders orders as a table.
func RenderOrderList(orders []*domain.Order) string {
	if len(orders) == 0 {
		return Dim("No orders found.") + "\n"
	}

	headers := []string{"Number", "Customer", "Status", "Due"}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			Bold(o.Number),
			o.Customer,
			OrderStatusLabel(o.Status),
			FormatDate(o.DueDate),
		})
	}
	return RenderTable(headers, rows)
}

// RenderOrderDetail renders one order with its items.
func RenderOrderDetail(o *domain.Order, items []*domain.OrderItem) string {
	var b strings.Builder

	b.WriteString(Header("Order " + o.Number) + "\n")
	b.WriteString(fmt.Sprintf("  Customer: %s\n", Bold(o.Customer)))
	b.WriteString(fmt.Sprintf("  Status:   %s\n", OrderStatusLabel(o.Status)))
	b.WriteString(fmt.Sprintf("  Due:      %s\n", FormatDate(o.DueDate)))
	if o.Description != "" {
		b.WriteString(fmt.Sprintf("  Notes:    %s\n", o.Description))
	}
	b.WriteString("\n")

	b.WriteString(Header("Items") + "\n")
	if len(items) == 0 {
		b.WriteString(Dim("  No items.") + "\n")
		return b.String()
	}

	headers := []string{"ID", "Product", "Qty", "Drawing"}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			Dim(it.DisplayID()),
			it.ProductType,
			strconv.Itoa(it.Quantity) + " " + it.Unit,
			it.Drawing,
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}
