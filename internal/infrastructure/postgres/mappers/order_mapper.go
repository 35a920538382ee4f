package mappers

import (
	"github.com/vendora/marketplace-service/internal/domain"
	"github.com/vendora/marketplace-service/internal/infrastructure/postgres/models"
)

// ToDomainOrder normalizes legacy paid spellings to the canonical PAID value
// so nothing above the repository ever sees them.
func ToDomainOrder(model *models.OrderModel) *domain.Order {
	status := domain.OrderStatus(model.Status)
	if domain.IsPaidStatus(model.Status) {
		status = domain.OrderPaid
	}
	return &domain.Order{
		ID:                    model.ID,
		BuyerID:               model.BuyerID,
		ProductID:             model.ProductID,
		VendorID:              model.VendorID,
		TenantKey:             model.TenantKey,
		Status:                status,
		AmountCents:           model.AmountCents,
		PlatformEarningsCents: model.PlatformEarningsCents,
		VendorEarningsCents:   model.VendorEarningsCents,
		PaidAt:                model.PaidAt,
		CreatedAt:             model.CreatedAt,
		UpdatedAt:             model.UpdatedAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:                    order.ID,
		BuyerID:               order.BuyerID,
		ProductID:             order.ProductID,
		VendorID:              order.VendorID,
		TenantKey:             order.TenantKey,
		Status:                string(order.Status),
		AmountCents:           order.AmountCents,
		PlatformEarningsCents: order.PlatformEarningsCents,
		VendorEarningsCents:   order.VendorEarningsCents,
		PaidAt:                order.PaidAt,
		CreatedAt:             order.CreatedAt,
		UpdatedAt:             order.UpdatedAt,
	}
}
