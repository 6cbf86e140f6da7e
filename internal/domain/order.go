package domain

import "time"

// Order is a flat, denormalized order record as persisted at intake.
// Total is frozen at creation (Quantity × Rate) and never recomputed;
// EffectiveRevenue is the quantity every aggregate and display must use.
type Order struct {
	ID           uint
	InvoiceID    string
	CustomerName string
	PhoneNumber  string
	EmailAddress string
	ItemType     string
	Size         string
	Quantity     int
	Rate         float64
	Total        float64
	Discount     *float64
	DeliveryType string
	PaymentMode  string
	Status       string
	Notes        *string
	// CreatedAt is UTC. A zero value means the stored timestamp was missing
	// or unparseable; such records are excluded from time-bucketed aggregates.
	CreatedAt time.Time
}

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusDelivered  = "delivered"
)

// OrderStatuses lists the accepted status vocabulary. Transitions are
// unconstrained: any status may move to any other.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusCompleted,
	OrderStatusDelivered,
}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// EffectiveRevenue returns Total reduced by the discount percentage.
// A nil or zero discount leaves Total unchanged; 100 yields zero.
func (o *Order) EffectiveRevenue() float64 {
	if o.Discount == nil {
		return o.Total
	}
	return o.Total - o.Total**o.Discount/100
}

// HasValidCreatedAt reports whether the record carries a usable timestamp.
func (o *Order) HasValidCreatedAt() bool {
	return !o.CreatedAt.IsZero()
}
