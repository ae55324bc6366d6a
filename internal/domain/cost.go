package domain

import "time"

// CostEntry is a single bookkeeping entry against an order.
// Amounts are in the shop's accounting currency.
type CostEntry struct {
	ID          string
	OrderID     string
	Category    CostCategory
	Description string
	Amount      float64
	IncurredOn  time.Time
	CreatedAt   time.Time
}
