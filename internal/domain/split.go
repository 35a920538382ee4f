package domain

// VendorSharePercent is the fixed vendor side of the revenue split.
const VendorSharePercent int64 = 80

type RevenueSplit struct {
	PlatformCents int64
	VendorCents   int64
}

// SplitOrderAmount divides a paid order's amount 80/20. The vendor share is
// rounded half-up in integer arithmetic; the platform share is the remainder,
// never rounded independently, so PlatformCents+VendorCents == amountCents
// holds exactly. Floating point never touches this path.
func SplitOrderAmount(amountCents int64) (RevenueSplit, error) {
	if amountCents < 0 {
		return RevenueSplit{}, ErrInvalidAmount
	}
	vendor := (amountCents*VendorSharePercent + 50) / 100
	return RevenueSplit{
		PlatformCents: amountCents - vendor,
		VendorCents:   vendor,
	}, nil
}

// LegacyVendorEarnings reproduces the split's vendor share for old order rows
// whose vendor_earnings_cents column was never populated. Per-row fallback
// only; never applied globally.
func LegacyVendorEarnings(amountCents int64) int64 {
	return (amountCents*VendorSharePercent + 50) / 100
}
