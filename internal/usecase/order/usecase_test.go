package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendora/marketplace-service/internal/domain"
	orderdto "github.com/vendora/marketplace-service/internal/usecase/dto/order"
)

type stubOrderRepo struct {
	orders map[string]*domain.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) CreateOrder(o *domain.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *stubOrderRepo) GetOrderByID(id string) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *stubOrderRepo) GetOrdersByVendor(vendorID string, filters domain.OrderFilters, page, limit int32) ([]*domain.Order, int64, error) {
	var out []*domain.Order
	for _, o := range r.orders {
		if o.VendorID != vendorID {
			continue
		}
		if filters.Status != "" && o.Status != filters.Status {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *stubOrderRepo) GetOrdersByBuyer(buyerID string, page, limit int32) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.orders {
		if o.BuyerID == buyerID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) MarkPaid(id string, platformCents, vendorCents int64) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if o.Status != domain.OrderPending {
		return domain.ErrInvalidStatus
	}
	now := time.Now()
	o.Status = domain.OrderPaid
	o.PlatformEarningsCents = platformCents
	o.VendorEarningsCents = vendorCents
	o.PaidAt = &now
	return nil
}

func (r *stubOrderRepo) MarkCanceled(id string) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.Status = domain.OrderCanceled
	return nil
}

func (r *stubOrderRepo) SumPaidAmount(ctx context.Context, vendorID string) (int64, error) {
	return 0, nil
}

func (r *stubOrderRepo) SumPaidVendorEarnings(ctx context.Context, vendorID string) (int64, error) {
	return 0, nil
}

func (r *stubOrderRepo) CountPaidOrders(ctx context.Context, vendorID string) (int64, error) {
	return 0, nil
}

type stubProductRepo struct {
	products map[string]*domain.Product
}

func (r *stubProductRepo) CreateProduct(*domain.Product) error { return nil }
func (r *stubProductRepo) UpdateProduct(*domain.Product) error { return nil }
func (r *stubProductRepo) SetStatus(string, domain.ProductStatus, bool, string) error {
	return nil
}
func (r *stubProductRepo) ArchiveProduct(string, time.Time) error { return nil }

func (r *stubProductRepo) GetProductByID(id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (r *stubProductRepo) GetProductsByVendor(string, string) ([]*domain.Product, error) {
	return nil, nil
}
func (r *stubProductRepo) GetProductsByTenant(string, int32, int32) ([]*domain.Product, error) {
	return nil, nil
}
func (r *stubProductRepo) CountActiveByVendorProfile(string) (int64, error) { return 0, nil }

func newOrderFixture() (*DefaultOrderUsecase, *stubOrderRepo) {
	orders := newStubOrderRepo()
	products := &stubProductRepo{products: map[string]*domain.Product{
		"p1": {
			ID:         "p1",
			VendorID:   "vendor-1",
			TenantKey:  "MARKETPLACE",
			PriceCents: 1000,
			Status:     domain.ProductActive,
			IsActive:   true,
		},
	}}
	return NewDefaultOrderUsecase(orders, products, nil, nil), orders
}

func createPendingOrder(t *testing.T, uc *DefaultOrderUsecase) *orderdto.OrderOutput {
	t.Helper()
	order, err := uc.CreateOrder(context.Background(), &orderdto.CreateOrderInput{
		BuyerID:     "buyer-1",
		ProductID:   "p1",
		TenantKey:   "MARKETPLACE",
		AmountCents: 1000,
	})
	require.NoError(t, err)
	return order
}

func TestCreateOrderPending(t *testing.T) {
	uc, _ := newOrderFixture()

	order := createPendingOrder(t, uc)

	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, "vendor-1", order.VendorID)
	assert.Equal(t, int64(1000), order.AmountCents)
	assert.Zero(t, order.VendorEarningsCents, "earnings are set at payment, not checkout")
}

func TestCreateOrderRejectsAmountMismatch(t *testing.T) {
	uc, _ := newOrderFixture()

	// 10.00 stored as 10 instead of 1000: the historical cents-scaling bug.
	_, err := uc.CreateOrder(context.Background(), &orderdto.CreateOrderInput{
		BuyerID:     "buyer-1",
		ProductID:   "p1",
		TenantKey:   "MARKETPLACE",
		AmountCents: 999,
	})
	assert.ErrorIs(t, err, domain.ErrAmountMismatch)
}

func TestCreateOrderRejectsBelowMinimum(t *testing.T) {
	uc, _ := newOrderFixture()

	_, err := uc.CreateOrder(context.Background(), &orderdto.CreateOrderInput{
		BuyerID:     "buyer-1",
		ProductID:   "p1",
		TenantKey:   "MARKETPLACE",
		AmountCents: 10,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestCreateOrderRejectsWrongTenant(t *testing.T) {
	uc, _ := newOrderFixture()

	_, err := uc.CreateOrder(context.Background(), &orderdto.CreateOrderInput{
		BuyerID:     "buyer-1",
		ProductID:   "p1",
		TenantKey:   "other-shop",
		AmountCents: 1000,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestMarkOrderPaidAppliesSplit(t *testing.T) {
	uc, repo := newOrderFixture()
	order := createPendingOrder(t, uc)

	paid, err := uc.MarkOrderPaid(context.Background(), order.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.OrderPaid, paid.Status)
	assert.Equal(t, int64(800), paid.VendorEarningsCents)
	assert.Equal(t, int64(200), paid.PlatformEarningsCents)
	assert.NotNil(t, paid.PaidAt)

	stored := repo.orders[order.ID]
	assert.Equal(t, stored.AmountCents, stored.PlatformEarningsCents+stored.VendorEarningsCents)
}

func TestMarkOrderPaidIdempotent(t *testing.T) {
	uc, _ := newOrderFixture()
	order := createPendingOrder(t, uc)

	first, err := uc.MarkOrderPaid(context.Background(), order.ID)
	require.NoError(t, err)

	second, err := uc.MarkOrderPaid(context.Background(), order.ID)
	require.NoError(t, err)

	assert.Equal(t, first.VendorEarningsCents, second.VendorEarningsCents)
	assert.Equal(t, first.PlatformEarningsCents, second.PlatformEarningsCents)
}

func TestMarkOrderPaidRejectsCanceled(t *testing.T) {
	uc, _ := newOrderFixture()
	order := createPendingOrder(t, uc)

	require.NoError(t, uc.CancelOrder(context.Background(), order.ID))

	_, err := uc.MarkOrderPaid(context.Background(), order.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestCancelOrderOnlyPending(t *testing.T) {
	uc, _ := newOrderFixture()
	order := createPendingOrder(t, uc)

	_, err := uc.MarkOrderPaid(context.Background(), order.ID)
	require.NoError(t, err)

	err = uc.CancelOrder(context.Background(), order.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
