package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vendora/marketplace-service/internal/domain"
	"github.com/vendora/marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/vendora/marketplace-service/internal/infrastructure/postgres/models"
)

type DefaultTenantRepository struct {
	db *gorm.DB
}

func NewDefaultTenantRepository(db *gorm.DB) *DefaultTenantRepository {
	return &DefaultTenantRepository{db: db}
}

func (r *DefaultTenantRepository) CreateTenant(tenant *domain.Tenant) error {
	return r.db.Create(mappers.ToGORMTenant(tenant)).Error
}

func (r *DefaultTenantRepository) UpdateTenant(tenant *domain.Tenant) error {
	return r.db.Save(mappers.ToGORMTenant(tenant)).Error
}

func (r *DefaultTenantRepository) GetTenantByID(id string) (*domain.Tenant, error) {
	var model models.TenantModel
	if err := r.db.Preload("Domains").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTenant(&model), nil
}

func (r *DefaultTenantRepository) GetTenantByKey(key string) (*domain.Tenant, error) {
	var model models.TenantModel
	if err := r.db.Preload("Domains").First(&model, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTenant(&model), nil
}

func (r *DefaultTenantRepository) GetTenants(page, limit int32) ([]*domain.Tenant, error) {
	var tenantModels []*models.TenantModel
	offset := (page - 1) * limit
	if err := r.db.Model(&models.TenantModel{}).
		Preload("Domains").
		Offset(int(offset)).Limit(int(limit)).
		Find(&tenantModels).Error; err != nil {
		return nil, err
	}

	tenants := make([]*domain.Tenant, len(tenantModels))
	for i, m := range tenantModels {
		tenants[i] = mappers.ToDomainTenant(m)
	}
	return tenants, nil
}

func (r *DefaultTenantRepository) CountDomains(tenantID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.TenantDomainModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error
	return count, err
}

func (r *DefaultTenantRepository) AttachDomain(d *domain.TenantDomain) error {
	return r.db.Create(&models.TenantDomainModel{
		ID:        d.ID,
		TenantID:  d.TenantID,
		Hostname:  d.Hostname,
		Verified:  d.Verified,
		CreatedAt: d.CreatedAt,
	}).Error
}

func (r *DefaultTenantRepository) DetachDomain(domainID string) error {
	return r.db.Delete(&models.TenantDomainModel{}, "id = ?", domainID).Error
}
