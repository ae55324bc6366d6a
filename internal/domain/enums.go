package domain

type StageStatus string

const (
	StagePending    StageStatus = "pending"
	StageInProgress StageStatus = "in_progress"
	StageCompleted  StageStatus = "completed"
)

// ValidStageStatuses is the canonical set of accepted stage status strings.
// Transitions between them are deliberately not enforced: the shop floor
// corrects records out of order all the time.
var ValidStageStatuses = map[string]bool{
	"pending": true, "in_progress": true, "completed": true,
}

type OrderStatus string

const (
	OrderOpen         OrderStatus = "open"
	OrderInProduction OrderStatus = "in_production"
	OrderDelivered    OrderStatus = "delivered"
	OrderClosed       OrderStatus = "closed"
	OrderCanceled     OrderStatus = "canceled"
)

var ValidOrderStatuses = map[string]bool{
	"open": true, "in_production": true, "delivered": true,
	"closed": true, "canceled": true,
}

type RequisitionStatus string

const (
	RequisitionDraft    RequisitionStatus = "draft"
	RequisitionOrdered  RequisitionStatus = "ordered"
	RequisitionPartial  RequisitionStatus = "partial"
	RequisitionReceived RequisitionStatus = "received"
	RequisitionCanceled RequisitionStatus = "canceled"
)

type CostCategory string

const (
	CostMaterial    CostCategory = "material"
	CostLabor       CostCategory = "labor"
	CostOutsourcing CostCategory = "outsourcing"
	CostOverhead    CostCategory = "overhead"
	CostOther       CostCategory = "other"
)

var ValidCostCategories = map[string]bool{
	"material": true, "labor": true, "outsourcing": true,
	"overhead": true, "other": true,
}
