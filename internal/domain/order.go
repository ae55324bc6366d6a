package domain

import (
	"fmt"
	"regexp"
	"time"
)

var orderNumberPattern = regexp.MustCompile(`^[A-Z]{2,4}-[0-9]{3,6}$`)

// Order is a customer order. Items carry the actual work; the order holds
// the customer-facing identity and the delivery deadline.
type Order struct {
	ID          string
	Number      string
	Customer    string
	Description string
	Status      OrderStatus
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidateNumber checks that Number is non-empty and matches the shop's
// order-number format: 2-4 uppercase letters, a dash, 3-6 digits
// (e.g. ORD-0042, FAB-12345).
func (o *Order) ValidateNumber() error {
	if o.Number == "" {
		return fmt.Errorf("order number is required")
	}
	if !orderNumberPattern.MatchString(o.Number) {
		return fmt.Errorf("order number %q must be 2-4 uppercase letters, a dash, and 3-6 digits (e.g. ORD-0042)", o.Number)
	}
	return nil
}

// OrderItem is a single manufactured position on an order. Each item owns
// at most one production plan; the plan is destroyed with the item.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductType string
	Drawing     string
	Quantity    int
	Unit        string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisplayID returns a short identifier for list views: the first eight
// characters of the UUID.
func (i *OrderItem) DisplayID() string {
	if len(i.ID) >= 8 {
		return i.ID[:8]
	}
	return i.ID
}
