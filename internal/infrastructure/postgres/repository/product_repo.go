package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vendora/marketplace-service/internal/domain"
	"github.com/vendora/marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/vendora/marketplace-service/internal/infrastructure/postgres/models"
)

type DefaultProductRepository struct {
	db *gorm.DB
}

func NewDefaultProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{db: db}
}

func (r *DefaultProductRepository) CreateProduct(product *domain.Product) error {
	return r.db.Create(mappers.ToGORMProduct(product)).Error
}

func (r *DefaultProductRepository) UpdateProduct(product *domain.Product) error {
	return r.db.Save(mappers.ToGORMProduct(product)).Error
}

// SetStatus writes status and is_active in one UPDATE. This is the only
// status write path, so status=BLOCKED can never land with is_active=true.
func (r *DefaultProductRepository) SetStatus(id string, status domain.ProductStatus, isActive bool, note string) error {
	result := r.db.Model(&models.ProductModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":          status,
		"is_active":       isActive,
		"moderation_note": note,
		"updated_at":      time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *DefaultProductRepository) ArchiveProduct(id string, at time.Time) error {
	result := r.db.Model(&models.ProductModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"archived_at": at,
		"is_active":   false,
		"updated_at":  at,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *DefaultProductRepository) GetProductByID(id string) (*domain.Product, error) {
	var model models.ProductModel
	if err := r.db.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProduct(&model), nil
}

func (r *DefaultProductRepository) GetProductsByVendor(vendorID, tenantKey string) ([]*domain.Product, error) {
	var productModels []*models.ProductModel
	query := r.db.Where("vendor_id = ? AND archived_at IS NULL", vendorID)
	if tenantKey != "" {
		query = query.Where("tenant_key = ?", tenantKey)
	}
	if err := query.Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, err
	}
	return toDomainProducts(productModels), nil
}

func (r *DefaultProductRepository) GetProductsByTenant(tenantKey string, page, limit int32) ([]*domain.Product, error) {
	var productModels []*models.ProductModel
	offset := (page - 1) * limit
	if err := r.db.
		Where("tenant_key = ? AND archived_at IS NULL", tenantKey).
		Order("created_at DESC").
		Offset(int(offset)).Limit(int(limit)).
		Find(&productModels).Error; err != nil {
		return nil, err
	}
	return toDomainProducts(productModels), nil
}

func (r *DefaultProductRepository) CountActiveByVendorProfile(vendorProfileID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProductModel{}).
		Where("vendor_profile_id = ? AND is_active = ? AND status = ? AND archived_at IS NULL",
			vendorProfileID, true, domain.ProductActive).
		Count(&count).Error
	return count, err
}

func toDomainProducts(productModels []*models.ProductModel) []*domain.Product {
	products := make([]*domain.Product, len(productModels))
	for i, m := range productModels {
		products[i] = mappers.ToDomainProduct(m)
	}
	return products
}
