package models

import (
	"time"

	"github.com/vendora/marketplace-service/internal/domain"
)

type VendorProfileModel struct {
	ID             string              `gorm:"primaryKey;type:uuid"`
	UserID         string              `gorm:"index:idx_vendor_user_tenant,unique;not null"`
	TenantKey      string              `gorm:"index:idx_vendor_user_tenant,unique;not null"`
	Status         domain.VendorStatus `gorm:"index;not null;default:PENDING"`
	IsPublic       bool                `gorm:"not null;default:true"`
	ModerationNote string
	DisplayName    string
	Slug           string `gorm:"index"`
	AvatarURL      string
	BannerURL      string

	TotalSales          int64
	TotalRevenueCents   int64
	ActiveProductsCount int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
