package order

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vendora/marketplace-service/internal/domain"
	orderdto "github.com/vendora/marketplace-service/internal/usecase/dto/order"
)

// CreateOrder is the single validated write path for order amounts. The
// amount must equal the product's canonical price in minor units; a mismatch
// is rejected instead of being repaired later by a maintenance script.
func (uc *DefaultOrderUsecase) CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*orderdto.OrderOutput, error) {
	if input.AmountCents < domain.MinPriceCents {
		return nil, fmt.Errorf("amount %d below minimum %d: %w", input.AmountCents, domain.MinPriceCents, domain.ErrInvalidAmount)
	}

	product, err := uc.ProductRepo.GetProductByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if input.AmountCents != product.PriceCents {
		return nil, fmt.Errorf("got %d, product price is %d: %w", input.AmountCents, product.PriceCents, domain.ErrAmountMismatch)
	}
	if product.TenantKey != input.TenantKey {
		return nil, domain.ErrProductNotFound
	}

	order := &domain.Order{
		ID:          uuid.New().String(),
		BuyerID:     input.BuyerID,
		ProductID:   product.ID,
		VendorID:    product.VendorID,
		TenantKey:   input.TenantKey,
		Status:      domain.OrderPending,
		AmountCents: input.AmountCents,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := uc.OrderRepo.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	slog.Info("order created",
		"order_id", order.ID,
		"product_id", order.ProductID,
		"tenant_key", order.TenantKey,
		"amount_cents", order.AmountCents,
	)
	return orderdto.FromDomain(order), nil
}
