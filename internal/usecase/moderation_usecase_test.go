package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendora/marketplace-service/internal/domain"
	productdto "github.com/vendora/marketplace-service/internal/usecase/dto/product"
	vendordto "github.com/vendora/marketplace-service/internal/usecase/dto/vendor"
)

func newModerationUC(profiles *fakeProfileRepo, products *fakeProductRepo) *DefaultModerationUsecase {
	return NewDefaultModerationUsecase(profiles, products, nil, nil, nil)
}

func seedProduct(products *fakeProductRepo, id string, status domain.ProductStatus, isActive bool) {
	products.products[id] = &domain.Product{
		ID:         id,
		VendorID:   "vendor-1",
		TenantKey:  "shop",
		Title:      "Icon pack",
		PriceCents: 500,
		Status:     status,
		IsActive:   isActive,
	}
}

func TestModerateVendorTransitions(t *testing.T) {
	profiles := newFakeProfileRepo()
	profiles.profiles["vp1"] = &domain.VendorProfile{ID: "vp1", UserID: "u1", TenantKey: "MARKETPLACE", Status: domain.VendorPending, IsPublic: true}
	uc := newModerationUC(profiles, newFakeProductRepo())

	err := uc.ModerateVendor(context.Background(), &vendordto.ModerateVendorInput{
		VendorProfileID: "vp1",
		Status:          "APPROVED",
		AdminID:         "admin-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.VendorApproved, profiles.profiles["vp1"].Status)

	// BLOCKED from any state, including straight back to PENDING after.
	err = uc.ModerateVendor(context.Background(), &vendordto.ModerateVendorInput{
		VendorProfileID: "vp1",
		Status:          "BLOCKED",
		ModerationNote:  "chargeback fraud",
		AdminID:         "admin-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.VendorBlocked, profiles.profiles["vp1"].Status)
	assert.Equal(t, "chargeback fraud", profiles.profiles["vp1"].ModerationNote)
}

func TestModerateVendorRejectsUnknownStatusBeforeWrite(t *testing.T) {
	profiles := newFakeProfileRepo()
	profiles.profiles["vp1"] = &domain.VendorProfile{ID: "vp1", Status: domain.VendorApproved}
	uc := newModerationUC(profiles, newFakeProductRepo())

	err := uc.ModerateVendor(context.Background(), &vendordto.ModerateVendorInput{
		VendorProfileID: "vp1",
		Status:          "SUSPENDED",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.Equal(t, domain.VendorApproved, profiles.profiles["vp1"].Status, "failed parse must not write")
}

func TestModerateVendorTogglesIsPublicOnlyWhenSet(t *testing.T) {
	profiles := newFakeProfileRepo()
	profiles.profiles["vp1"] = &domain.VendorProfile{ID: "vp1", Status: domain.VendorApproved, IsPublic: true}
	uc := newModerationUC(profiles, newFakeProductRepo())

	err := uc.ModerateVendor(context.Background(), &vendordto.ModerateVendorInput{
		VendorProfileID: "vp1",
		Status:          "APPROVED",
	})
	require.NoError(t, err)
	assert.True(t, profiles.profiles["vp1"].IsPublic)

	hidden := false
	err = uc.ModerateVendor(context.Background(), &vendordto.ModerateVendorInput{
		VendorProfileID: "vp1",
		Status:          "APPROVED",
		IsPublic:        &hidden,
	})
	require.NoError(t, err)
	assert.False(t, profiles.profiles["vp1"].IsPublic)
}

func TestBlockProductForcesInactive(t *testing.T) {
	products := newFakeProductRepo()
	seedProduct(products, "p1", domain.ProductActive, true)
	uc := newModerationUC(newFakeProfileRepo(), products)

	updated, err := uc.SetProductStatus(context.Background(), &productdto.SetProductStatusInput{
		ProductID:      "p1",
		Status:         "BLOCKED",
		ModerationNote: "dmca takedown",
		ActorID:        "admin-1",
		ActorIsAdmin:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ProductBlocked, updated.Status)
	assert.False(t, updated.IsActive)
	assert.False(t, products.products["p1"].IsActive)
}

func TestUnblockKeepsProductInactiveUntilRepublish(t *testing.T) {
	products := newFakeProductRepo()
	seedProduct(products, "p1", domain.ProductBlocked, false)
	uc := newModerationUC(newFakeProfileRepo(), products)

	updated, err := uc.SetProductStatus(context.Background(), &productdto.SetProductStatusInput{
		ProductID:    "p1",
		Status:       "ACTIVE",
		ActorID:      "admin-1",
		ActorIsAdmin: true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ProductActive, updated.Status)
	assert.False(t, updated.IsActive, "leaving BLOCKED must not auto-activate")

	// The vendor republishes explicitly.
	updated, err = uc.SetProductStatus(context.Background(), &productdto.SetProductStatusInput{
		ProductID: "p1",
		Status:    "ACTIVE",
		ActorID:   "vendor-1",
	})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
}

func TestSetProductStatusRejectsUnknownStatus(t *testing.T) {
	products := newFakeProductRepo()
	seedProduct(products, "p1", domain.ProductActive, true)
	uc := newModerationUC(newFakeProfileRepo(), products)

	_, err := uc.SetProductStatus(context.Background(), &productdto.SetProductStatusInput{
		ProductID:    "p1",
		Status:       "PAUSED",
		ActorIsAdmin: true,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.True(t, products.products["p1"].IsActive, "failed parse must not write")
}

func TestVendorCannotTouchBlockedState(t *testing.T) {
	products := newFakeProductRepo()
	seedProduct(products, "p1", domain.ProductActive, true)
	seedProduct(products, "p2", domain.ProductBlocked, false)
	uc := newModerationUC(newFakeProfileRepo(), products)

	_, err := uc.SetProductStatus(context.Background(), &productdto.SetProductStatusInput{
		ProductID: "p1",
		Status:    "BLOCKED",
		ActorID:   "vendor-1",
	})
	assert.ErrorIs(t, err, domain.ErrCapabilityDenied)

	_, err = uc.SetProductStatus(context.Background(), &productdto.SetProductStatusInput{
		ProductID: "p2",
		Status:    "ACTIVE",
		ActorID:   "vendor-1",
	})
	assert.ErrorIs(t, err, domain.ErrCapabilityDenied)
}

func TestVendorCannotModerateForeignProduct(t *testing.T) {
	products := newFakeProductRepo()
	seedProduct(products, "p1", domain.ProductActive, true)
	uc := newModerationUC(newFakeProfileRepo(), products)

	_, err := uc.SetProductStatus(context.Background(), &productdto.SetProductStatusInput{
		ProductID: "p1",
		Status:    "DRAFT",
		ActorID:   "vendor-2",
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestUnpublishToDraftDeactivates(t *testing.T) {
	products := newFakeProductRepo()
	seedProduct(products, "p1", domain.ProductActive, true)
	uc := newModerationUC(newFakeProfileRepo(), products)

	updated, err := uc.SetProductStatus(context.Background(), &productdto.SetProductStatusInput{
		ProductID: "p1",
		Status:    "DRAFT",
		ActorID:   "vendor-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ProductDraft, updated.Status)
	assert.False(t, updated.IsActive)
}
