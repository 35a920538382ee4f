package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vendora/marketplace-service/internal/domain"
	"github.com/vendora/marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/vendora/marketplace-service/internal/infrastructure/postgres/models"
)

type DefaultVendorProfileRepository struct {
	db *gorm.DB
}

func NewDefaultVendorProfileRepository(db *gorm.DB) *DefaultVendorProfileRepository {
	return &DefaultVendorProfileRepository{db: db}
}

// UpsertVendorProfile keys on (user_id, tenant_key): re-onboarding refreshes
// the display fields without resetting moderation state.
func (r *DefaultVendorProfileRepository) UpsertVendorProfile(profile *domain.VendorProfile) error {
	model := mappers.ToGORMVendorProfile(profile)
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "tenant_key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"display_name", "avatar_url", "banner_url", "updated_at",
		}),
	}).Create(model).Error
}

func (r *DefaultVendorProfileRepository) UpdateVendorProfile(profile *domain.VendorProfile) error {
	return r.db.Save(mappers.ToGORMVendorProfile(profile)).Error
}

func (r *DefaultVendorProfileRepository) GetVendorProfileByID(id string) (*domain.VendorProfile, error) {
	var model models.VendorProfileModel
	if err := r.db.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVendorProfileNotFound
		}
		return nil, err
	}
	return mappers.ToDomainVendorProfile(&model), nil
}

func (r *DefaultVendorProfileRepository) GetVendorProfileByUser(userID, tenantKey string) (*domain.VendorProfile, error) {
	var model models.VendorProfileModel
	if err := r.db.First(&model, "user_id = ? AND tenant_key = ?", userID, tenantKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVendorProfileNotFound
		}
		return nil, err
	}
	return mappers.ToDomainVendorProfile(&model), nil
}

func (r *DefaultVendorProfileRepository) GetVendorProfileBySlug(slug, tenantKey string) (*domain.VendorProfile, error) {
	var model models.VendorProfileModel
	if err := r.db.First(&model, "slug = ? AND tenant_key = ?", slug, tenantKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVendorProfileNotFound
		}
		return nil, err
	}
	return mappers.ToDomainVendorProfile(&model), nil
}

func (r *DefaultVendorProfileRepository) GetVendorProfiles(tenantKey string, page, limit int32) ([]*domain.VendorProfile, error) {
	var profileModels []*models.VendorProfileModel
	offset := (page - 1) * limit
	query := r.db.Model(&models.VendorProfileModel{})
	if tenantKey != "" {
		query = query.Where("tenant_key = ?", tenantKey)
	}
	if err := query.Offset(int(offset)).Limit(int(limit)).Find(&profileModels).Error; err != nil {
		return nil, err
	}

	profiles := make([]*domain.VendorProfile, len(profileModels))
	for i, m := range profileModels {
		profiles[i] = mappers.ToDomainVendorProfile(m)
	}
	return profiles, nil
}

func (r *DefaultVendorProfileRepository) SetModerationState(id string, status domain.VendorStatus, isPublic *bool, note string) error {
	updates := map[string]interface{}{
		"status":          status,
		"moderation_note": note,
		"updated_at":      time.Now(),
	}
	if isPublic != nil {
		updates["is_public"] = *isPublic
	}

	result := r.db.Model(&models.VendorProfileModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrVendorProfileNotFound
	}
	return nil
}

func (r *DefaultVendorProfileRepository) UpdateCachedStats(id string, totalSales, totalRevenueCents, activeProducts int64) error {
	return r.db.Model(&models.VendorProfileModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"total_sales":           totalSales,
		"total_revenue_cents":   totalRevenueCents,
		"active_products_count": activeProducts,
		"updated_at":            time.Now(),
	}).Error
}
