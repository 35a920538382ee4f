package domain

import "time"

type OrderStatus string

const (
	OrderPending  OrderStatus = "PENDING"
	OrderPaid     OrderStatus = "PAID"
	OrderCanceled OrderStatus = "CANCELED"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderPending, OrderPaid, OrderCanceled:
		return OrderStatus(s), nil
	}
	return "", ErrInvalidStatus
}

// PaidStatusTokens lists every historical spelling of "paid" found in
// migrated order rows. New writes always store OrderPaid; the aggregator
// reads with this set until the backfill migration lands.
// TODO: drop the legacy tokens once orders.status is backfilled to PAID.
var PaidStatusTokens = []string{"PAID", "paid", "COMPLETED", "completed", "SUCCESS", "success"}

// IsPaidStatus reports whether a raw status literal counts as paid.
func IsPaidStatus(raw string) bool {
	for _, t := range PaidStatusTokens {
		if raw == t {
			return true
		}
	}
	return false
}

// Order invariant: once the earnings fields are populated,
// AmountCents == PlatformEarningsCents + VendorEarningsCents, and AmountCents
// equals the product's PriceCents at checkout time.
type Order struct {
	ID                    string
	BuyerID               string
	ProductID             string
	VendorID              string
	TenantKey             string
	Status                OrderStatus
	AmountCents           int64
	PlatformEarningsCents int64
	VendorEarningsCents   int64
	PaidAt                *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
