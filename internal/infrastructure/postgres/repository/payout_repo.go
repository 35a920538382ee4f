package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vendora/marketplace-service/internal/domain"
	"github.com/vendora/marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/vendora/marketplace-service/internal/infrastructure/postgres/models"
)

type DefaultPayoutRepository struct {
	db *gorm.DB
}

func NewDefaultPayoutRepository(db *gorm.DB) *DefaultPayoutRepository {
	return &DefaultPayoutRepository{db: db}
}

func (r *DefaultPayoutRepository) CreatePayout(payout *domain.Payout) error {
	return r.db.Create(mappers.ToGORMPayout(payout)).Error
}

func (r *DefaultPayoutRepository) GetPayoutByID(id string) (*domain.Payout, error) {
	var model models.PayoutModel
	if err := r.db.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPayoutNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPayout(&model), nil
}

func (r *DefaultPayoutRepository) GetPayoutsByVendor(vendorID string, page, limit int32) ([]*domain.Payout, error) {
	var payoutModels []*models.PayoutModel
	offset := (page - 1) * limit
	if err := r.db.
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Offset(int(offset)).Limit(int(limit)).
		Find(&payoutModels).Error; err != nil {
		return nil, err
	}

	payouts := make([]*domain.Payout, len(payoutModels))
	for i, m := range payoutModels {
		payouts[i] = mappers.ToDomainPayout(m)
	}
	return payouts, nil
}

// MarkPaid is a single-row conditional UPDATE: the status predicate makes the
// PENDING->PAID transition atomic, so a concurrent balance read sums the
// amount under exactly one status.
func (r *DefaultPayoutRepository) MarkPaid(id string, at time.Time) error {
	result := r.db.Model(&models.PayoutModel{}).
		Where("id = ? AND status = ?", id, domain.PayoutPending).
		Updates(map[string]interface{}{
			"status":  domain.PayoutPaid,
			"paid_at": at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPayoutNotFound
	}
	return nil
}

func (r *DefaultPayoutRepository) SumByStatus(ctx context.Context, vendorID string, status domain.PayoutStatus) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&models.PayoutModel{}).
		Where("vendor_id = ? AND status = ?", vendorID, status).
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&sum).Error
	return sum, err
}
