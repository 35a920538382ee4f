package domain

// Capabilities is the fixed feature-flag record derived from tenant mode and
// plan. Route guards and the visibility evaluator consume it as a whole; no
// flag is ever left unset.
type Capabilities struct {
	WhiteLabelStore bool
	MarketplaceBuy  bool
	MarketplaceSell bool
	PublicProducts  bool
	CustomDomain    bool
	Analytics       bool
	Branding        bool
	VendorApproval  bool
	Payouts         bool
}

// ComputeCapabilities maps (mode, plan) to a capability set. The mode picks
// the baseline, the plan overlay only ever adds flags on top of it. Callers
// must reject unknown enum values before invoking; this function is total for
// the declared constants.
func ComputeCapabilities(mode TenantMode, plan TenantPlan) Capabilities {
	caps := Capabilities{
		PublicProducts: true,
	}

	switch mode {
	case ModeMarketplace:
		caps.MarketplaceBuy = true
		caps.MarketplaceSell = true
		caps.VendorApproval = true
	default:
		// WHITE_LABEL baseline, also used for legacy rows normalized upstream.
		caps.WhiteLabelStore = true
	}

	if plan == PlanPro || plan == PlanEnterprise {
		caps.Branding = true
		caps.CustomDomain = true
		caps.Analytics = true
		caps.Payouts = true
	}

	return caps
}

// Require returns ErrCapabilityDenied unless the flag is set. Usecases call it
// before any capability-gated write.
func (c Capabilities) Require(flag bool) error {
	if !flag {
		return ErrCapabilityDenied
	}
	return nil
}
