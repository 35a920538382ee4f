package payoutdto

// VendorBalances is the derived money view for a vendor. Everything here is
// recomputed from orders and payouts; nothing is stored.
type VendorBalances struct {
	GrossCents            int64
	VendorEarningsCents   int64
	PaidOutCents          int64
	PendingRequestedCents int64
	AvailableCents        int64
}
