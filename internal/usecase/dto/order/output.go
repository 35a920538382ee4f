package orderdto

import (
	"time"

	"github.com/vendora/marketplace-service/internal/domain"
)

type OrderOutput struct {
	ID                    string
	BuyerID               string
	ProductID             string
	VendorID              string
	TenantKey             string
	Status                domain.OrderStatus
	AmountCents           int64
	PlatformEarningsCents int64
	VendorEarningsCents   int64
	PaidAt                *time.Time
	CreatedAt             time.Time
}

func FromDomain(order *domain.Order) *OrderOutput {
	return &OrderOutput{
		ID:                    order.ID,
		BuyerID:               order.BuyerID,
		ProductID:             order.ProductID,
		VendorID:              order.VendorID,
		TenantKey:             order.TenantKey,
		Status:                order.Status,
		AmountCents:           order.AmountCents,
		PlatformEarningsCents: order.PlatformEarningsCents,
		VendorEarningsCents:   order.VendorEarningsCents,
		PaidAt:                order.PaidAt,
		CreatedAt:             order.CreatedAt,
	}
}
