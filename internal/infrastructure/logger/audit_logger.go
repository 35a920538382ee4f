package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ModerationEvent is the append-only audit row written for every admin
// moderation action.
type ModerationEvent struct {
	ID         uint `gorm:"primaryKey"`
	AdminID    string
	EntityType string // "product" | "vendor_profile"
	EntityID   string
	FromStatus string
	ToStatus   string
	Note       string
	Timestamp  time.Time
}

type ModerationAuditLogger interface {
	LogModeration(ctx context.Context, event ModerationEvent) error
}

type PGModerationAuditLogger struct {
	db *gorm.DB
}

func NewPGModerationAuditLogger(db *gorm.DB) *PGModerationAuditLogger {
	return &PGModerationAuditLogger{db: db}
}

func (l *PGModerationAuditLogger) LogModeration(ctx context.Context, event ModerationEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}
