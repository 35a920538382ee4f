package payout

import (
	"context"

	"github.com/vendora/marketplace-service/internal/domain"
	"github.com/vendora/marketplace-service/internal/infrastructure/metrics"
	payoutdto "github.com/vendora/marketplace-service/internal/usecase/dto/payout"
)

type PayoutUsecase interface {
	ComputeBalances(ctx context.Context, vendorID string) (*payoutdto.VendorBalances, error)
	RequestPayout(ctx context.Context, input *payoutdto.RequestPayoutInput) (*domain.Payout, error)
	MarkPayoutPaid(ctx context.Context, payoutID string) (*domain.Payout, error)
	GetVendorPayouts(ctx context.Context, vendorID string, page, limit int32) ([]*domain.Payout, error)
}

type DefaultPayoutUsecase struct {
	OrderRepo  domain.OrderRepository
	PayoutRepo domain.PayoutRepository
	Publisher  domain.PublisherPort
	Metrics    *metrics.MarketplaceMetrics
}

func NewDefaultPayoutUsecase(
	orderRepo domain.OrderRepository,
	payoutRepo domain.PayoutRepository,
	pub domain.PublisherPort,
	m *metrics.MarketplaceMetrics,
) *DefaultPayoutUsecase {
	return &DefaultPayoutUsecase{
		OrderRepo:  orderRepo,
		PayoutRepo: payoutRepo,
		Publisher:  pub,
		Metrics:    m,
	}
}
