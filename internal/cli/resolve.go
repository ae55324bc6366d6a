package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// resolveOrderID resolves an order identifier which can be:
//   - An order number (e.g. ORD-0042)
//   - A UUID string (passed through directly)
func resolveOrderID(ctx context.Context, app *App, input string) (string, error) {
	if strings.Contains(input, "-") && len(input) < 12 {
		if o, err := app.Orders.GetByNumber(ctx, input); err == nil {
			return o.ID, nil
		}
	}
	return input, nil
}

// resolveItemID resolves an item identifier which can be:
//   - A 1-based position within an order (requires --order)
//   - A UUID or UUID prefix
func resolveItemID(ctx context.Context, app *App, input, orderRef string) (string, error) {
	if pos, err := strconv.Atoi(input); err == nil && pos > 0 {
		if orderRef == "" {
			return "", fmt.Errorf("item position #%d requires --order", pos)
		}
		orderID, err := resolveOrderID(ctx, app, orderRef)
		if err != nil {
			return "", err
		}
		items, err := app.Orders.ListItems(ctx, orderID)
		if err != nil {
			return "", err
		}
		if pos > len(items) {
			return "", fmt.Errorf("order has %d items, no item #%d", len(items), pos)
		}
		return items[pos-1].ID, nil
	}

	// A UUID prefix matches when it is unambiguous within the order.
	if orderRef != "" && len(input) < 36 {
		orderID, err := resolveOrderID(ctx, app, orderRef)
		if err != nil {
			return "", err
		}
		items, err := app.Orders.ListItems(ctx, orderID)
		if err != nil {
			return "", err
		}
		var match string
		for _, it := range items {
			if strings.HasPrefix(it.ID, input) {
				if match != "" {
					return "", fmt.Errorf("item prefix %q is ambiguous", input)
				}
				match = it.ID
			}
		}
		if match != "" {
			return match, nil
		}
	}
	return input, nil
}
