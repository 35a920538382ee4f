package mappers

import (
	"github.com/vendora/marketplace-service/internal/domain"
	"github.com/vendora/marketplace-service/internal/infrastructure/postgres/models"
)

func ToDomainProduct(model *models.ProductModel) *domain.Product {
	return &domain.Product{
		ID:              model.ID,
		VendorID:        model.VendorID,
		VendorProfileID: model.VendorProfileID,
		TenantKey:       model.TenantKey,
		Title:           model.Title,
		Description:     model.Description,
		Slug:            model.Slug,
		PriceCents:      model.PriceCents,
		FileKey:         model.FileKey,
		IsActive:        model.IsActive,
		Status:          model.Status,
		ModerationNote:  model.ModerationNote,
		ArchivedAt:      model.ArchivedAt,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToGORMProduct(product *domain.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:              product.ID,
		VendorID:        product.VendorID,
		VendorProfileID: product.VendorProfileID,
		TenantKey:       product.TenantKey,
		Title:           product.Title,
		Description:     product.Description,
		Slug:            product.Slug,
		PriceCents:      product.PriceCents,
		FileKey:         product.FileKey,
		IsActive:        product.IsActive,
		Status:          product.Status,
		ModerationNote:  product.ModerationNote,
		ArchivedAt:      product.ArchivedAt,
		CreatedAt:       product.CreatedAt,
		UpdatedAt:       product.UpdatedAt,
	}
}
