package kafka

import "time"

const (
	TopicOrderEvents      = "order-events"
	TopicPayoutEvents     = "payout-events"
	TopicModerationEvents = "moderation-events"
)

type OrderPaidEvent struct {
	OrderID               string    `json:"order_id"`
	VendorID              string    `json:"vendor_id"`
	TenantKey             string    `json:"tenant_key"`
	AmountCents           int64     `json:"amount_cents"`
	PlatformEarningsCents int64     `json:"platform_earnings_cents"`
	VendorEarningsCents   int64     `json:"vendor_earnings_cents"`
	PaidAt                time.Time `json:"paid_at"`
}

type PayoutEvent struct {
	PayoutID    string `json:"payout_id"`
	VendorID    string `json:"vendor_id"`
	Reference   string `json:"reference"`
	AmountCents int64  `json:"amount_cents"`
	Status      string `json:"status"`
}

type ModerationEvent struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	AdminID    string `json:"admin_id"`
}
