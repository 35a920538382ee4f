package mappers

import (
	"github.com/vendora/marketplace-service/internal/domain"
	"github.com/vendora/marketplace-service/internal/infrastructure/postgres/models"
)

func ToDomainVendorProfile(model *models.VendorProfileModel) *domain.VendorProfile {
	return &domain.VendorProfile{
		ID:                  model.ID,
		UserID:              model.UserID,
		TenantKey:           model.TenantKey,
		Status:              model.Status,
		IsPublic:            model.IsPublic,
		ModerationNote:      model.ModerationNote,
		DisplayName:         model.DisplayName,
		Slug:                model.Slug,
		AvatarURL:           model.AvatarURL,
		BannerURL:           model.BannerURL,
		TotalSales:          model.TotalSales,
		TotalRevenueCents:   model.TotalRevenueCents,
		ActiveProductsCount: model.ActiveProductsCount,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

func ToGORMVendorProfile(profile *domain.VendorProfile) *models.VendorProfileModel {
	return &models.VendorProfileModel{
		ID:                  profile.ID,
		UserID:              profile.UserID,
		TenantKey:           profile.TenantKey,
		Status:              profile.Status,
		IsPublic:            profile.IsPublic,
		ModerationNote:      profile.ModerationNote,
		DisplayName:         profile.DisplayName,
		Slug:                profile.Slug,
		AvatarURL:           profile.AvatarURL,
		BannerURL:           profile.BannerURL,
		TotalSales:          profile.TotalSales,
		TotalRevenueCents:   profile.TotalRevenueCents,
		ActiveProductsCount: profile.ActiveProductsCount,
		CreatedAt:           profile.CreatedAt,
		UpdatedAt:           profile.UpdatedAt,
	}
}
