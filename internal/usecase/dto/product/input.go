package productdto

type CreateProductInput struct {
	VendorID   string
	TenantKey  string
	Title      string
	Description string
	Slug       string
	PriceCents int64
	FileKey    string
}

type UpdateProductInput struct {
	ProductID   string
	VendorID    string
	Title       string
	Description string
	PriceCents  int64
}

type SetProductStatusInput struct {
	ProductID      string
	Status         string
	ModerationNote string
	ActorID        string
	ActorIsAdmin   bool
}
