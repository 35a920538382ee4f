package models

import (
	"time"

	"github.com/vendora/marketplace-service/internal/domain"
)

type PayoutModel struct {
	ID          string              `gorm:"primaryKey;type:uuid"`
	VendorID    string              `gorm:"index;not null"`
	Reference   string              `gorm:"uniqueIndex;not null"`
	AmountCents int64               `gorm:"not null"`
	Status      domain.PayoutStatus `gorm:"index;not null;default:PENDING"`
	CreatedAt   time.Time
	PaidAt      *time.Time
}
