package mappers

import (
	"github.com/vendora/marketplace-service/internal/domain"
	"github.com/vendora/marketplace-service/internal/infrastructure/postgres/models"
)

func ToDomainPayout(model *models.PayoutModel) *domain.Payout {
	return &domain.Payout{
		ID:          model.ID,
		VendorID:    model.VendorID,
		Reference:   model.Reference,
		AmountCents: model.AmountCents,
		Status:      model.Status,
		CreatedAt:   model.CreatedAt,
		PaidAt:      model.PaidAt,
	}
}

func ToGORMPayout(payout *domain.Payout) *models.PayoutModel {
	return &models.PayoutModel{
		ID:          payout.ID,
		VendorID:    payout.VendorID,
		Reference:   payout.Reference,
		AmountCents: payout.AmountCents,
		Status:      payout.Status,
		CreatedAt:   payout.CreatedAt,
		PaidAt:      payout.PaidAt,
	}
}
