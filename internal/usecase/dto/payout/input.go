package payoutdto

type RequestPayoutInput struct {
	VendorID    string
	AmountCents int64
}
