package domain

// Visibility reason codes. Rendered verbatim by admin debugging views, so
// every failing condition is reported, not just the first one.
const (
	ReasonInactive               = "inactive"
	ReasonProductDraft           = "product_draft"
	ReasonProductBlocked         = "product_blocked"
	ReasonVendorBlocked          = "vendor_blocked"
	ReasonPublicProductsDisabled = "public_products_disabled"
	ReasonVendorNotApproved      = "vendor_not_approved"
	ReasonVendorProfilePrivate   = "vendor_profile_private"
)

type Visibility struct {
	Visible bool
	Reasons []string
}

// VisibilityContext carries the tenant side of a visibility decision.
type VisibilityContext struct {
	Mode         TenantMode
	Capabilities Capabilities
}

// EvaluateVisibility answers whether a product may be shown on public
// surfaces. It never errors: "not visible" is an expected outcome. Owner and
// admin preview of hidden products is an ownership/role check done by the
// caller, not here.
//
// Marketplace tenants additionally require an APPROVED, public vendor
// profile. A white-label shop's single vendor is implicitly approved.
func EvaluateVisibility(product *Product, profile *VendorProfile, owner *User, tc VisibilityContext) Visibility {
	var reasons []string

	if !product.IsActive {
		reasons = append(reasons, ReasonInactive)
	}
	// The BLOCKED => inactive invariant makes the status checks redundant for
	// well-formed rows, but a blocked product must never leak even if a
	// legacy row violates it.
	switch product.Status {
	case ProductActive:
	case ProductBlocked:
		reasons = append(reasons, ReasonProductBlocked)
	default:
		reasons = append(reasons, ReasonProductDraft)
	}

	if owner != nil && owner.IsBlocked {
		reasons = append(reasons, ReasonVendorBlocked)
	}

	if !tc.Capabilities.PublicProducts {
		reasons = append(reasons, ReasonPublicProductsDisabled)
	}

	if tc.Mode == ModeMarketplace {
		if profile == nil || profile.Status != VendorApproved {
			reasons = append(reasons, ReasonVendorNotApproved)
		}
		if profile != nil && !profile.IsPublic {
			reasons = append(reasons, ReasonVendorProfilePrivate)
		}
	}

	return Visibility{Visible: len(reasons) == 0, Reasons: reasons}
}
