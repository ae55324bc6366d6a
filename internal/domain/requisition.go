package domain

import "time"

// Requisition is a material purchase request, optionally tied to an order
// and a supplier. Lines track per-material quantities and receiving.
type Requisition struct {
	ID          string
	Number      string
	OrderID     *string
	SupplierID  *string
	Status      RequisitionStatus
	RequestedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Lines []*RequisitionLine
}

type RequisitionLine struct {
	ID            string
	RequisitionID string
	Material      string
	Spec          string
	Quantity      float64
	Unit          string
	ReceivedQty   float64
	ReceivedAt    *time.Time
}

// Outstanding returns the quantity still to be received on a line.
// Over-receiving clamps to zero rather than going negative.
func (l *RequisitionLine) Outstanding() float64 {
	if l.ReceivedQty >= l.Quantity {
		return 0
	}
	return l.Quantity - l.ReceivedQty
}

// DeriveStatus recomputes the requisition status from its lines.
// Draft and canceled requisitions keep their status; receiving only
// moves ordered requisitions toward partial/received.
func (r *Requisition) DeriveStatus() RequisitionStatus {
	if r.Status == RequisitionDraft || r.Status == RequisitionCanceled {
		return r.Status
	}
	if len(r.Lines) == 0 {
		return RequisitionOrdered
	}
	anyReceived := false
	allReceived := true
	for _, l := range r.Lines {
		if l.ReceivedQty > 0 {
			anyReceived = true
		}
		if l.Outstanding() > 0 {
			allReceived = false
		}
	}
	switch {
	case allReceived:
		return RequisitionReceived
	case anyReceived:
		return RequisitionPartial
	default:
		return RequisitionOrdered
	}
}
