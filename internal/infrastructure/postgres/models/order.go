package models

import (
	"time"
)

// OrderModel keeps Status as a plain string column: legacy rows still carry
// mixed-case paid spellings until the backfill migration lands, so the
// repository normalizes on read.
type OrderModel struct {
	ID                    string       `gorm:"primaryKey;type:uuid"`
	BuyerID               string       `gorm:"index;not null"`
	ProductID             string       `gorm:"type:uuid;index;not null"`
	Product               ProductModel `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	VendorID              string       `gorm:"index;not null"`
	TenantKey             string       `gorm:"index;not null"`
	Status                string       `gorm:"index;not null"`
	AmountCents           int64        `gorm:"not null"`
	PlatformEarningsCents int64
	VendorEarningsCents   int64
	PaidAt                *time.Time
	CreatedAt             time.Time `gorm:"index:idx_order_created_at"`
	UpdatedAt             time.Time
}
