package order

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vendora/marketplace-service/internal/domain"
	publisher "github.com/vendora/marketplace-service/internal/infrastructure/kafka"
	orderdto "github.com/vendora/marketplace-service/internal/usecase/dto/order"
)

// MarkOrderPaid runs at payment confirmation: it applies the 80/20 split and
// writes status, both earnings fields and paidAt in one repository UPDATE.
// The stored status is always the canonical PAID literal.
func (uc *DefaultOrderUsecase) MarkOrderPaid(ctx context.Context, orderID string) (*orderdto.OrderOutput, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.OrderPaid {
		// Payment-provider webhooks retry; confirming twice is a no-op.
		return orderdto.FromDomain(order), nil
	}
	if order.Status != domain.OrderPending {
		return nil, fmt.Errorf("order %s is %s: %w", order.ID, order.Status, domain.ErrInvalidStatus)
	}

	split, err := domain.SplitOrderAmount(order.AmountCents)
	if err != nil {
		return nil, fmt.Errorf("split order %s: %w", order.ID, err)
	}

	if err := uc.OrderRepo.MarkPaid(order.ID, split.PlatformCents, split.VendorCents); err != nil {
		return nil, fmt.Errorf("mark order paid: %w", err)
	}

	now := time.Now()
	order.Status = domain.OrderPaid
	order.PlatformEarningsCents = split.PlatformCents
	order.VendorEarningsCents = split.VendorCents
	order.PaidAt = &now
	order.UpdatedAt = now

	if uc.Metrics != nil {
		uc.Metrics.OrdersPaidTotal.WithLabelValues(order.TenantKey).Inc()
		uc.Metrics.OrdersPaidAmountCents.WithLabelValues(order.TenantKey).Add(float64(order.AmountCents))
		uc.Metrics.PlatformFeeCentsTotal.WithLabelValues(order.TenantKey).Add(float64(split.PlatformCents))
		uc.Metrics.VendorEarningsCentsTotal.WithLabelValues(order.TenantKey).Add(float64(split.VendorCents))
	}

	uc.publishPaid(order, now)

	slog.Info("order paid",
		"order_id", order.ID,
		"vendor_id", order.VendorID,
		"amount_cents", order.AmountCents,
		"vendor_earnings_cents", split.VendorCents,
	)
	return orderdto.FromDomain(order), nil
}

func (uc *DefaultOrderUsecase) publishPaid(order *domain.Order, paidAt time.Time) {
	if uc.Publisher == nil {
		return
	}
	event := publisher.OrderPaidEvent{
		OrderID:               order.ID,
		VendorID:              order.VendorID,
		TenantKey:             order.TenantKey,
		AmountCents:           order.AmountCents,
		PlatformEarningsCents: order.PlatformEarningsCents,
		VendorEarningsCents:   order.VendorEarningsCents,
		PaidAt:                paidAt,
	}
	go func() {
		if err := publisher.PublishJSON(uc.Publisher, publisher.TopicOrderEvents, order.VendorID, event); err != nil {
			slog.Error("failed to publish order paid event", "order_id", order.ID, "error", err.Error())
		}
	}()
}
