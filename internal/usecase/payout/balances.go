package payout

import (
	"context"
	"fmt"
	"time"

	"github.com/vendora/marketplace-service/internal/domain"
	payoutdto "github.com/vendora/marketplace-service/internal/usecase/dto/payout"
	"golang.org/x/sync/errgroup"
)

// ComputeBalances derives the vendor money view from orders and payouts. The
// four sums are independent reads, so they run as a scatter/gather. Reading
// has no side effects; two calls with no intervening writes return the same
// numbers.
//
// A concurrent PENDING->PAID payout transition may be observed before or
// after, but never half-applied: each payout row's single status column is
// the only thing both sums key on.
func (uc *DefaultPayoutUsecase) ComputeBalances(ctx context.Context, vendorID string) (*payoutdto.VendorBalances, error) {
	start := time.Now()

	var (
		gross          int64
		vendorEarnings int64
		paidOut        int64
		pending        int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		gross, err = uc.OrderRepo.SumPaidAmount(gctx, vendorID)
		return err
	})
	g.Go(func() error {
		var err error
		vendorEarnings, err = uc.OrderRepo.SumPaidVendorEarnings(gctx, vendorID)
		return err
	})
	g.Go(func() error {
		var err error
		paidOut, err = uc.PayoutRepo.SumByStatus(gctx, vendorID, domain.PayoutPaid)
		return err
	})
	g.Go(func() error {
		var err error
		pending, err = uc.PayoutRepo.SumByStatus(gctx, vendorID, domain.PayoutPending)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compute balances for vendor %s: %w", vendorID, err)
	}

	available := vendorEarnings - paidOut - pending
	if available < 0 {
		available = 0
	}

	if uc.Metrics != nil {
		uc.Metrics.BalanceComputeDuration.WithLabelValues().Observe(time.Since(start).Seconds())
	}

	return &payoutdto.VendorBalances{
		GrossCents:            gross,
		VendorEarningsCents:   vendorEarnings,
		PaidOutCents:          paidOut,
		PendingRequestedCents: pending,
		AvailableCents:        available,
	}, nil
}
