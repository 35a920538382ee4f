package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marketplaceCtx() VisibilityContext {
	return VisibilityContext{
		Mode:         ModeMarketplace,
		Capabilities: ComputeCapabilities(ModeMarketplace, PlanFree),
	}
}

func whiteLabelCtx() VisibilityContext {
	return VisibilityContext{
		Mode:         ModeWhiteLabel,
		Capabilities: ComputeCapabilities(ModeWhiteLabel, PlanPro),
	}
}

func visibleFixture() (*Product, *VendorProfile, *User) {
	product := &Product{
		ID:       "p1",
		IsActive: true,
		Status:   ProductActive,
	}
	profile := &VendorProfile{
		ID:       "vp1",
		Status:   VendorApproved,
		IsPublic: true,
	}
	owner := &User{ID: "u1", Role: RoleVendor}
	return product, profile, owner
}

func TestVisibleOnMarketplace(t *testing.T) {
	product, profile, owner := visibleFixture()

	v := EvaluateVisibility(product, profile, owner, marketplaceCtx())

	require.True(t, v.Visible)
	assert.Empty(t, v.Reasons)
}

func TestPendingVendorHiddenOnMarketplace(t *testing.T) {
	product, profile, owner := visibleFixture()
	profile.Status = VendorPending

	v := EvaluateVisibility(product, profile, owner, marketplaceCtx())

	require.False(t, v.Visible)
	assert.Contains(t, v.Reasons, ReasonVendorNotApproved)
}

func TestPendingVendorVisibleOnWhiteLabel(t *testing.T) {
	// Single-vendor shops do not require profile approval.
	product, profile, owner := visibleFixture()
	profile.Status = VendorPending
	profile.IsPublic = false

	v := EvaluateVisibility(product, profile, owner, whiteLabelCtx())

	require.True(t, v.Visible)
	assert.Empty(t, v.Reasons)
}

func TestAllFailuresEnumerated(t *testing.T) {
	product, profile, owner := visibleFixture()
	product.IsActive = false
	product.Status = ProductBlocked
	profile.Status = VendorPending
	profile.IsPublic = false
	owner.IsBlocked = true

	v := EvaluateVisibility(product, profile, owner, marketplaceCtx())

	require.False(t, v.Visible)
	assert.ElementsMatch(t, []string{
		ReasonInactive,
		ReasonProductBlocked,
		ReasonVendorBlocked,
		ReasonVendorNotApproved,
		ReasonVendorProfilePrivate,
	}, v.Reasons)
}

func TestDraftProductHidden(t *testing.T) {
	product, profile, owner := visibleFixture()
	product.Status = ProductDraft

	v := EvaluateVisibility(product, profile, owner, marketplaceCtx())

	require.False(t, v.Visible)
	assert.Equal(t, []string{ReasonProductDraft}, v.Reasons)
}

func TestBlockedOwnerAlwaysHides(t *testing.T) {
	product, profile, owner := visibleFixture()
	owner.IsBlocked = true

	for _, tc := range []VisibilityContext{marketplaceCtx(), whiteLabelCtx()} {
		v := EvaluateVisibility(product, profile, owner, tc)
		require.False(t, v.Visible, "mode %s", tc.Mode)
		assert.Contains(t, v.Reasons, ReasonVendorBlocked)
	}
}

func TestMissingProfileOnMarketplace(t *testing.T) {
	product, _, owner := visibleFixture()

	v := EvaluateVisibility(product, nil, owner, marketplaceCtx())

	require.False(t, v.Visible)
	assert.Contains(t, v.Reasons, ReasonVendorNotApproved)
}

// Flipping any single gating signal off never increases visibility.
func TestVisibilityMonotonicity(t *testing.T) {
	degrade := []func(p *Product, vp *VendorProfile, u *User){
		func(p *Product, vp *VendorProfile, u *User) { p.IsActive = false },
		func(p *Product, vp *VendorProfile, u *User) { u.IsBlocked = true },
		func(p *Product, vp *VendorProfile, u *User) { vp.IsPublic = false },
		func(p *Product, vp *VendorProfile, u *User) { vp.Status = VendorBlocked },
		func(p *Product, vp *VendorProfile, u *User) { p.Status = ProductBlocked },
	}

	for i, mutate := range degrade {
		product, profile, owner := visibleFixture()
		before := EvaluateVisibility(product, profile, owner, marketplaceCtx())
		mutate(product, profile, owner)
		after := EvaluateVisibility(product, profile, owner, marketplaceCtx())

		require.True(t, before.Visible, "case %d baseline", i)
		assert.False(t, after.Visible, "case %d must not gain visibility", i)
	}
}
