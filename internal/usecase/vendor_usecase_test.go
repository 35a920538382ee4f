package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendora/marketplace-service/internal/domain"
	vendordto "github.com/vendora/marketplace-service/internal/usecase/dto/vendor"
)

func TestOnboardVendorStartsPending(t *testing.T) {
	profiles := newFakeProfileRepo()
	uc := NewDefaultVendorUsecase(profiles, newFakeOrderRepo(), newFakeProductRepo())

	profile, err := uc.OnboardVendor(context.Background(), &vendordto.OnboardVendorInput{
		UserID:      "u1",
		TenantKey:   domain.MarketplaceTenantKey,
		DisplayName: "Pixel Forge",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.VendorPending, profile.Status)
	assert.True(t, profile.IsPublic)
	assert.Equal(t, "pixel-forge", profile.Slug)
}

func TestOnboardVendorTwicePreservesModeration(t *testing.T) {
	profiles := newFakeProfileRepo()
	uc := NewDefaultVendorUsecase(profiles, newFakeOrderRepo(), newFakeProductRepo())

	first, err := uc.OnboardVendor(context.Background(), &vendordto.OnboardVendorInput{
		UserID:      "u1",
		TenantKey:   domain.MarketplaceTenantKey,
		DisplayName: "Pixel Forge",
	})
	require.NoError(t, err)

	profiles.profiles[first.ID].Status = domain.VendorApproved

	again, err := uc.OnboardVendor(context.Background(), &vendordto.OnboardVendorInput{
		UserID:      "u1",
		TenantKey:   domain.MarketplaceTenantKey,
		DisplayName: "Pixel Forge Studio",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, domain.VendorApproved, again.Status, "re-onboarding must not reset moderation")
	assert.Equal(t, "Pixel Forge Studio", again.DisplayName)
}

func TestRecomputeStatsFromOrders(t *testing.T) {
	profiles := newFakeProfileRepo()
	orders := newFakeOrderRepo()
	products := newFakeProductRepo()
	uc := NewDefaultVendorUsecase(profiles, orders, products)

	profiles.profiles["vp1"] = &domain.VendorProfile{ID: "vp1", UserID: "u1", TenantKey: domain.MarketplaceTenantKey}
	orders.orders["o1"] = &domain.Order{ID: "o1", VendorID: "u1", Status: domain.OrderPaid, AmountCents: 1000, VendorEarningsCents: 800}
	orders.orders["o2"] = &domain.Order{ID: "o2", VendorID: "u1", Status: domain.OrderPaid, AmountCents: 500, VendorEarningsCents: 400}
	orders.orders["o3"] = &domain.Order{ID: "o3", VendorID: "u1", Status: domain.OrderPending, AmountCents: 9000}
	products.products["p1"] = &domain.Product{ID: "p1", VendorProfileID: "vp1", Status: domain.ProductActive, IsActive: true}

	stats, err := uc.RecomputeStats(context.Background(), "vp1")
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalSales)
	assert.Equal(t, int64(1200), stats.TotalRevenueCents)
	assert.Equal(t, int64(1), stats.ActiveProductsCount)

	stored := profiles.profiles["vp1"]
	assert.Equal(t, int64(2), stored.TotalSales)
	assert.Equal(t, int64(1200), stored.TotalRevenueCents)
}

func TestRecomputeStatsLegacyEarningsFallback(t *testing.T) {
	profiles := newFakeProfileRepo()
	orders := newFakeOrderRepo()
	uc := NewDefaultVendorUsecase(profiles, orders, newFakeProductRepo())

	profiles.profiles["vp1"] = &domain.VendorProfile{ID: "vp1", UserID: "u1"}
	// Migrated row: paid spelling variant, earnings never populated.
	orders.orders["o1"] = &domain.Order{ID: "o1", VendorID: "u1", Status: "completed", AmountCents: 1000}

	stats, err := uc.RecomputeStats(context.Background(), "vp1")
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.TotalSales)
	assert.Equal(t, int64(800), stats.TotalRevenueCents)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "pixel-forge", slugify("  Pixel Forge "))
	assert.Equal(t, "vector-pack-2", slugify("Vector Pack 2"))
	assert.Equal(t, "sfx", slugify("SFX!"))
}
