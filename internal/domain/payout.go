package domain

import (
	"context"
	"time"
)

type PayoutStatus string

const (
	PayoutPending PayoutStatus = "PENDING"
	PayoutPaid    PayoutStatus = "PAID"
)

func ParsePayoutStatus(s string) (PayoutStatus, error) {
	switch PayoutStatus(s) {
	case PayoutPending, PayoutPaid:
		return PayoutStatus(s), nil
	}
	return "", ErrInvalidStatus
}

// Payout transitions PENDING -> PAID exactly once and never back.
type Payout struct {
	ID          string
	VendorID    string
	Reference   string
	AmountCents int64
	Status      PayoutStatus
	CreatedAt   time.Time
	PaidAt      *time.Time
}

type PayoutRepository interface {
	CreatePayout(payout *Payout) error
	GetPayoutByID(id string) (*Payout, error)
	GetPayoutsByVendor(vendorID string, page, limit int32) ([]*Payout, error)
	// MarkPaid flips PENDING -> PAID atomically; it must not touch rows that
	// are already PAID.
	MarkPaid(id string, at time.Time) error

	SumByStatus(ctx context.Context, vendorID string, status PayoutStatus) (int64, error)
}
