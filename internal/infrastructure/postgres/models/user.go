package models

import (
	"time"

	"github.com/vendora/marketplace-service/internal/domain"
)

type UserModel struct {
	ID        string          `gorm:"primaryKey;type:uuid"`
	Email     string          `gorm:"uniqueIndex"`
	Role      domain.UserRole `gorm:"not null;default:BUYER"`
	IsBlocked bool            `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
