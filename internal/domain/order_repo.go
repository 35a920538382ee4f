package domain

import "context"

// OrderFilters narrows order listings for vendor and admin views.
type OrderFilters struct {
	Status    OrderStatus
	TenantKey string
	BuyerID   string
	ProductID string
}

type OrderRepository interface {
	CreateOrder(order *Order) error
	GetOrderByID(id string) (*Order, error)
	GetOrdersByVendor(vendorID string, filters OrderFilters, page, limit int32) ([]*Order, int64, error)
	GetOrdersByBuyer(buyerID string, page, limit int32) ([]*Order, error)

	// MarkPaid writes status, earnings fields and paidAt in one UPDATE.
	MarkPaid(id string, platformCents, vendorCents int64) error
	MarkCanceled(id string) error

	// Aggregates over paid orders (legacy paid spellings included, see
	// PaidStatusTokens). They feed the balance computation and are issued
	// concurrently by the payout usecase.
	SumPaidAmount(ctx context.Context, vendorID string) (int64, error)
	// SumPaidVendorEarnings applies the per-row 80% fallback for legacy rows
	// whose vendor_earnings_cents was never populated.
	SumPaidVendorEarnings(ctx context.Context, vendorID string) (int64, error)
	CountPaidOrders(ctx context.Context, vendorID string) (int64, error)
}
