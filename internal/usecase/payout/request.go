package payout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/vendora/marketplace-service/internal/domain"
	publisher "github.com/vendora/marketplace-service/internal/infrastructure/kafka"
	payoutdto "github.com/vendora/marketplace-service/internal/usecase/dto/payout"
)

// RequestPayout creates a PENDING payout capped by the current available
// balance. The pending row itself reduces availability, so two sequential
// requests cannot overdraw even without a lock: the second one recomputes
// against the first.
func (uc *DefaultPayoutUsecase) RequestPayout(ctx context.Context, input *payoutdto.RequestPayoutInput) (*domain.Payout, error) {
	if input.AmountCents <= 0 {
		return nil, fmt.Errorf("payout amount %d: %w", input.AmountCents, domain.ErrInvalidAmount)
	}

	balances, err := uc.ComputeBalances(ctx, input.VendorID)
	if err != nil {
		return nil, err
	}
	if input.AmountCents > balances.AvailableCents {
		if uc.Metrics != nil {
			uc.Metrics.PayoutsRejectedTotal.WithLabelValues("insufficient_balance").Inc()
		}
		return nil, fmt.Errorf("requested %d, available %d: %w",
			input.AmountCents, balances.AvailableCents, domain.ErrInsufficientBalance)
	}

	payout := &domain.Payout{
		ID:          uuid.New().String(),
		VendorID:    input.VendorID,
		Reference:   newReference(),
		AmountCents: input.AmountCents,
		Status:      domain.PayoutPending,
		CreatedAt:   time.Now(),
	}
	if err := uc.PayoutRepo.CreatePayout(payout); err != nil {
		return nil, fmt.Errorf("create payout: %w", err)
	}

	if uc.Metrics != nil {
		uc.Metrics.PayoutsRequestedTotal.WithLabelValues(payout.VendorID).Inc()
		uc.Metrics.PayoutsRequestedAmountCents.WithLabelValues(payout.VendorID).Add(float64(payout.AmountCents))
	}
	uc.publish(payout)

	slog.Info("payout requested",
		"payout_id", payout.ID,
		"vendor_id", payout.VendorID,
		"reference", payout.Reference,
		"amount_cents", payout.AmountCents,
	)
	return payout, nil
}

// newReference builds the human-facing payout code shown in support tickets.
func newReference() string {
	gen, err := nanoid.CustomASCII("0123456789ABCDEFGHJKMNPQRSTVWXYZ", 12)
	if err != nil {
		return uuid.New().String()
	}
	return "PO-" + gen()
}

func (uc *DefaultPayoutUsecase) publish(payout *domain.Payout) {
	if uc.Publisher == nil {
		return
	}
	event := publisher.PayoutEvent{
		PayoutID:    payout.ID,
		VendorID:    payout.VendorID,
		Reference:   payout.Reference,
		AmountCents: payout.AmountCents,
		Status:      string(payout.Status),
	}
	go func() {
		if err := publisher.PublishJSON(uc.Publisher, publisher.TopicPayoutEvents, payout.VendorID, event); err != nil {
			slog.Error("failed to publish payout event", "payout_id", payout.ID, "error", err.Error())
		}
	}()
}
