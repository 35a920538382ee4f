package models

import (
	"time"

	"github.com/vendora/marketplace-service/internal/domain"
)

type TenantModel struct {
	ID        string              `gorm:"primaryKey;type:uuid"`
	Key       string              `gorm:"uniqueIndex;not null"`
	Mode      domain.TenantMode   `gorm:"index"`
	Plan      domain.TenantPlan   `gorm:"not null;default:FREE"`
	Status    domain.TenantStatus `gorm:"not null;default:ACTIVE"`
	Name      string
	ThemeJSON string              `gorm:"type:jsonb"`
	Domains   []TenantDomainModel `gorm:"foreignKey:TenantID;references:ID;constraint:OnDelete:CASCADE;"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TenantDomainModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	TenantID  string `gorm:"type:uuid;index;not null"`
	Hostname  string `gorm:"uniqueIndex;not null"`
	Verified  bool
	CreatedAt time.Time
}
