package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vendora/marketplace-service/internal/domain"
	vendordto "github.com/vendora/marketplace-service/internal/usecase/dto/vendor"
	"golang.org/x/sync/errgroup"
)

type VendorUsecase interface {
	OnboardVendor(ctx context.Context, input *vendordto.OnboardVendorInput) (*domain.VendorProfile, error)
	GetVendorProfile(ctx context.Context, id string) (*domain.VendorProfile, error)
	GetVendorProfileBySlug(ctx context.Context, slug, tenantKey string) (*domain.VendorProfile, error)
	RecomputeStats(ctx context.Context, vendorProfileID string) (*vendordto.VendorStats, error)
}

type DefaultVendorUsecase struct {
	ProfileRepo domain.VendorProfileRepository
	OrderRepo   domain.OrderRepository
	ProductRepo domain.ProductRepository
}

func NewDefaultVendorUsecase(
	profileRepo domain.VendorProfileRepository,
	orderRepo domain.OrderRepository,
	productRepo domain.ProductRepository,
) *DefaultVendorUsecase {
	return &DefaultVendorUsecase{
		ProfileRepo: profileRepo,
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
	}
}

// OnboardVendor upserts the profile keyed by (userID, tenantKey). A fresh
// profile always starts PENDING; re-onboarding an existing vendor never
// resets moderation state.
func (uc *DefaultVendorUsecase) OnboardVendor(ctx context.Context, input *vendordto.OnboardVendorInput) (*domain.VendorProfile, error) {
	if input.UserID == "" || input.TenantKey == "" {
		return nil, fmt.Errorf("user_id and tenant_key are required")
	}

	if existing, err := uc.ProfileRepo.GetVendorProfileByUser(input.UserID, input.TenantKey); err == nil {
		existing.DisplayName = input.DisplayName
		existing.AvatarURL = input.AvatarURL
		existing.BannerURL = input.BannerURL
		existing.UpdatedAt = time.Now()
		if err := uc.ProfileRepo.UpdateVendorProfile(existing); err != nil {
			return nil, fmt.Errorf("update vendor profile: %w", err)
		}
		return existing, nil
	}

	slug := input.Slug
	if slug == "" {
		slug = slugify(input.DisplayName)
	}

	profile := &domain.VendorProfile{
		ID:          uuid.New().String(),
		UserID:      input.UserID,
		TenantKey:   input.TenantKey,
		Status:      domain.VendorPending,
		IsPublic:    true,
		DisplayName: input.DisplayName,
		Slug:        slug,
		AvatarURL:   input.AvatarURL,
		BannerURL:   input.BannerURL,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := uc.ProfileRepo.UpsertVendorProfile(profile); err != nil {
		return nil, fmt.Errorf("upsert vendor profile: %w", err)
	}

	slog.Info("vendor onboarded", "vendor_profile_id", profile.ID, "tenant_key", profile.TenantKey)
	return profile, nil
}

func (uc *DefaultVendorUsecase) GetVendorProfile(ctx context.Context, id string) (*domain.VendorProfile, error) {
	return uc.ProfileRepo.GetVendorProfileByID(id)
}

func (uc *DefaultVendorUsecase) GetVendorProfileBySlug(ctx context.Context, slug, tenantKey string) (*domain.VendorProfile, error) {
	return uc.ProfileRepo.GetVendorProfileBySlug(slug, tenantKey)
}

// RecomputeStats refreshes the denormalized stat fields from the order and
// product tables. The sums run concurrently; orders stay the source of truth.
func (uc *DefaultVendorUsecase) RecomputeStats(ctx context.Context, vendorProfileID string) (*vendordto.VendorStats, error) {
	profile, err := uc.ProfileRepo.GetVendorProfileByID(vendorProfileID)
	if err != nil {
		return nil, fmt.Errorf("load vendor profile: %w", err)
	}

	var (
		totalSales     int64
		totalRevenue   int64
		activeProducts int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalSales, err = uc.OrderRepo.CountPaidOrders(gctx, profile.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		totalRevenue, err = uc.OrderRepo.SumPaidVendorEarnings(gctx, profile.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		activeProducts, err = uc.ProductRepo.CountActiveByVendorProfile(profile.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("recompute vendor stats: %w", err)
	}

	if err := uc.ProfileRepo.UpdateCachedStats(profile.ID, totalSales, totalRevenue, activeProducts); err != nil {
		return nil, fmt.Errorf("write cached stats: %w", err)
	}

	return &vendordto.VendorStats{
		TotalSales:          totalSales,
		TotalRevenueCents:   totalRevenue,
		ActiveProductsCount: activeProducts,
	}, nil
}

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Join(strings.Fields(s), "-")
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' {
			return r
		}
		return -1
	}, s)
}
