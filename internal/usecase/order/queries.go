package order

import (
	"context"

	"github.com/vendora/marketplace-service/internal/domain"
	orderdto "github.com/vendora/marketplace-service/internal/usecase/dto/order"
)

func (uc *DefaultOrderUsecase) GetOrderByID(ctx context.Context, orderID string) (*orderdto.OrderOutput, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	return orderdto.FromDomain(order), nil
}

func (uc *DefaultOrderUsecase) GetVendorOrders(ctx context.Context, vendorID string, filters domain.OrderFilters, page, limit int32) ([]*orderdto.OrderOutput, int64, error) {
	orders, total, err := uc.OrderRepo.GetOrdersByVendor(vendorID, filters, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return toOutputs(orders), total, nil
}

func (uc *DefaultOrderUsecase) GetBuyerOrders(ctx context.Context, buyerID string, page, limit int32) ([]*orderdto.OrderOutput, error) {
	orders, err := uc.OrderRepo.GetOrdersByBuyer(buyerID, page, limit)
	if err != nil {
		return nil, err
	}
	return toOutputs(orders), nil
}

func toOutputs(orders []*domain.Order) []*orderdto.OrderOutput {
	out := make([]*orderdto.OrderOutput, len(orders))
	for i, o := range orders {
		out[i] = orderdto.FromDomain(o)
	}
	return out
}
