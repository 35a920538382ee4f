package orderdto

type CreateOrderInput struct {
	BuyerID     string
	ProductID   string
	TenantKey   string
	AmountCents int64
}
