package order

import (
	"context"

	"github.com/vendora/marketplace-service/internal/domain"
	"github.com/vendora/marketplace-service/internal/infrastructure/metrics"
	orderdto "github.com/vendora/marketplace-service/internal/usecase/dto/order"
)

type OrderUsecase interface {
	CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*orderdto.OrderOutput, error)
	MarkOrderPaid(ctx context.Context, orderID string) (*orderdto.OrderOutput, error)
	CancelOrder(ctx context.Context, orderID string) error

	GetOrderByID(ctx context.Context, orderID string) (*orderdto.OrderOutput, error)
	GetVendorOrders(ctx context.Context, vendorID string, filters domain.OrderFilters, page, limit int32) ([]*orderdto.OrderOutput, int64, error)
	GetBuyerOrders(ctx context.Context, buyerID string, page, limit int32) ([]*orderdto.OrderOutput, error)
}

type DefaultOrderUsecase struct {
	OrderRepo   domain.OrderRepository
	ProductRepo domain.ProductRepository
	Publisher   domain.PublisherPort
	Metrics     *metrics.MarketplaceMetrics
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	productRepo domain.ProductRepository,
	pub domain.PublisherPort,
	m *metrics.MarketplaceMetrics,
) *DefaultOrderUsecase {
	return &DefaultOrderUsecase{
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		Publisher:   pub,
		Metrics:     m,
	}
}
