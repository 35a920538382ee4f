package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vendora/marketplace-service/internal/domain"
	"github.com/vendora/marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/vendora/marketplace-service/internal/infrastructure/postgres/models"
)

type DefaultOrderRepository struct {
	db *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{db: db}
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.Order) error {
	return r.db.Create(mappers.ToGORMOrder(order)).Error
}

func (r *DefaultOrderRepository) GetOrderByID(id string) (*domain.Order, error) {
	var model models.OrderModel
	if err := r.db.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&model), nil
}

func (r *DefaultOrderRepository) GetOrdersByVendor(vendorID string, filters domain.OrderFilters, page, limit int32) ([]*domain.Order, int64, error) {
	query := r.db.Model(&models.OrderModel{}).Where("vendor_id = ?", vendorID)
	if filters.Status != "" {
		if filters.Status == domain.OrderPaid {
			query = query.Where("status IN ?", domain.PaidStatusTokens)
		} else {
			query = query.Where("status = ?", filters.Status)
		}
	}
	if filters.TenantKey != "" {
		query = query.Where("tenant_key = ?", filters.TenantKey)
	}
	if filters.ProductID != "" {
		query = query.Where("product_id = ?", filters.ProductID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count vendor orders: %w", err)
	}

	var orderModels []*models.OrderModel
	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(int(offset)).Limit(int(limit)).Find(&orderModels).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, m := range orderModels {
		orders[i] = mappers.ToDomainOrder(m)
	}
	return orders, total, nil
}

func (r *DefaultOrderRepository) GetOrdersByBuyer(buyerID string, page, limit int32) ([]*domain.Order, error) {
	var orderModels []*models.OrderModel
	offset := (page - 1) * limit
	if err := r.db.
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Offset(int(offset)).Limit(int(limit)).
		Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, m := range orderModels {
		orders[i] = mappers.ToDomainOrder(m)
	}
	return orders, nil
}

// MarkPaid writes the canonical PAID literal together with both earnings
// fields; the guard on the current status makes webhook retries no-ops.
func (r *DefaultOrderRepository) MarkPaid(id string, platformCents, vendorCents int64) error {
	now := time.Now()
	result := r.db.Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", id, domain.OrderPending).
		Updates(map[string]interface{}{
			"status":                  domain.OrderPaid,
			"platform_earnings_cents": platformCents,
			"vendor_earnings_cents":   vendorCents,
			"paid_at":                 now,
			"updated_at":              now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *DefaultOrderRepository) MarkCanceled(id string) error {
	result := r.db.Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", id, domain.OrderPending).
		Updates(map[string]interface{}{
			"status":     domain.OrderCanceled,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *DefaultOrderRepository) SumPaidAmount(ctx context.Context, vendorID string) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Where("vendor_id = ? AND status IN ?", vendorID, domain.PaidStatusTokens).
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&sum).Error
	return sum, err
}

// SumPaidVendorEarnings sums the stored vendor share, substituting the 80%
// split per row where the column was never populated (legacy data).
func (r *DefaultOrderRepository) SumPaidVendorEarnings(ctx context.Context, vendorID string) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Where("vendor_id = ? AND status IN ?", vendorID, domain.PaidStatusTokens).
		Select("COALESCE(SUM(CASE WHEN vendor_earnings_cents > 0 THEN vendor_earnings_cents ELSE (amount_cents * 80 + 50) / 100 END), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *DefaultOrderRepository) CountPaidOrders(ctx context.Context, vendorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Where("vendor_id = ? AND status IN ?", vendorID, domain.PaidStatusTokens).
		Count(&count).Error
	return count, err
}
