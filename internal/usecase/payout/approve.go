package payout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vendora/marketplace-service/internal/domain"
)

// MarkPayoutPaid is the one-directional PENDING->PAID transition. Moving the
// amount from pendingRequested to paidOut leaves availableCents unchanged.
func (uc *DefaultPayoutUsecase) MarkPayoutPaid(ctx context.Context, payoutID string) (*domain.Payout, error) {
	payout, err := uc.PayoutRepo.GetPayoutByID(payoutID)
	if err != nil {
		return nil, err
	}
	if payout.Status == domain.PayoutPaid {
		return payout, nil
	}
	if payout.Status != domain.PayoutPending {
		return nil, fmt.Errorf("payout %s is %s: %w", payout.ID, payout.Status, domain.ErrInvalidStatus)
	}

	now := time.Now()
	if err := uc.PayoutRepo.MarkPaid(payout.ID, now); err != nil {
		return nil, fmt.Errorf("mark payout paid: %w", err)
	}
	payout.Status = domain.PayoutPaid
	payout.PaidAt = &now

	if uc.Metrics != nil {
		uc.Metrics.PayoutsPaidTotal.WithLabelValues(payout.VendorID).Inc()
		uc.Metrics.PayoutsPaidAmountCents.WithLabelValues(payout.VendorID).Add(float64(payout.AmountCents))
	}
	uc.publish(payout)

	slog.Info("payout paid", "payout_id", payout.ID, "vendor_id", payout.VendorID, "amount_cents", payout.AmountCents)
	return payout, nil
}
