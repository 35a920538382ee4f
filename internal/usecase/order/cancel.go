package order

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vendora/marketplace-service/internal/domain"
)

// CancelOrder abandons a pending checkout. Paid orders are immutable; an
// administrative correction is a separate, audited flow.
func (uc *DefaultOrderUsecase) CancelOrder(ctx context.Context, orderID string) error {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return err
	}
	if order.Status != domain.OrderPending {
		return fmt.Errorf("order %s is %s: %w", order.ID, order.Status, domain.ErrInvalidStatus)
	}

	if err := uc.OrderRepo.MarkCanceled(order.ID); err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}

	if uc.Metrics != nil {
		uc.Metrics.OrdersCanceledTotal.WithLabelValues(order.TenantKey).Inc()
	}
	slog.Info("order canceled", "order_id", order.ID, "tenant_key", order.TenantKey)
	return nil
}
