package payout

import (
	"context"

	"github.com/vendora/marketplace-service/internal/domain"
)

func (uc *DefaultPayoutUsecase) GetVendorPayouts(ctx context.Context, vendorID string, page, limit int32) ([]*domain.Payout, error) {
	return uc.PayoutRepo.GetPayoutsByVendor(vendorID, page, limit)
}
