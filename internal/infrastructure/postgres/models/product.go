package models

import (
	"time"

	"github.com/vendora/marketplace-service/internal/domain"
)

type ProductModel struct {
	ID              string               `gorm:"primaryKey;type:uuid"`
	VendorID        string               `gorm:"index;not null"`
	VendorProfileID string               `gorm:"type:uuid;index"`
	VendorProfile   VendorProfileModel   `gorm:"foreignKey:VendorProfileID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	TenantKey       string               `gorm:"index;not null"`
	Title           string               `gorm:"not null"`
	Description     string
	Slug            string               `gorm:"index"`
	PriceCents      int64                `gorm:"not null"`
	FileKey         string
	IsActive        bool                 `gorm:"index:idx_product_visibility"`
	Status          domain.ProductStatus `gorm:"index:idx_product_visibility;not null;default:DRAFT"`
	ModerationNote  string
	ArchivedAt      *time.Time `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
