package mappers

import (
	"github.com/vendora/marketplace-service/internal/domain"
	"github.com/vendora/marketplace-service/internal/infrastructure/postgres/models"
)

func ToDomainTenant(model *models.TenantModel) *domain.Tenant {
	domains := make([]domain.TenantDomain, len(model.Domains))
	for i, d := range model.Domains {
		domains[i] = domain.TenantDomain{
			ID:        d.ID,
			TenantID:  d.TenantID,
			Hostname:  d.Hostname,
			Verified:  d.Verified,
			CreatedAt: d.CreatedAt,
		}
	}
	return &domain.Tenant{
		ID:        model.ID,
		Key:       model.Key,
		Mode:      model.Mode,
		Plan:      model.Plan,
		Status:    model.Status,
		Name:      model.Name,
		ThemeJSON: model.ThemeJSON,
		Domains:   domains,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMTenant(tenant *domain.Tenant) *models.TenantModel {
	return &models.TenantModel{
		ID:        tenant.ID,
		Key:       tenant.Key,
		Mode:      tenant.Mode,
		Plan:      tenant.Plan,
		Status:    tenant.Status,
		Name:      tenant.Name,
		ThemeJSON: tenant.ThemeJSON,
		CreatedAt: tenant.CreatedAt,
		UpdatedAt: tenant.UpdatedAt,
	}
}
