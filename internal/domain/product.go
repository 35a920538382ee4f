package domain

import "time"

type ProductStatus string

const (
	ProductDraft   ProductStatus = "DRAFT"
	ProductActive  ProductStatus = "ACTIVE"
	ProductBlocked ProductStatus = "BLOCKED"
)

func ParseProductStatus(s string) (ProductStatus, error) {
	switch ProductStatus(s) {
	case ProductDraft, ProductActive, ProductBlocked:
		return ProductStatus(s), nil
	}
	return "", ErrInvalidStatus
}

// MinPriceCents is the platform-wide product price floor (CHF 1.00).
const MinPriceCents int64 = 100

// Product invariant: Status == BLOCKED implies IsActive == false. The
// moderation state machine is the only write path for Status and enforces
// this on every transition.
type Product struct {
	ID              string
	VendorID        string
	VendorProfileID string
	TenantKey       string
	Title           string
	Description     string
	Slug            string
	PriceCents      int64
	FileKey         string
	IsActive        bool
	Status          ProductStatus
	ModerationNote  string
	ArchivedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Archived reports whether the product was soft-deleted.
func (p *Product) Archived() bool {
	return p.ArchivedAt != nil
}

type ProductRepository interface {
	CreateProduct(product *Product) error
	UpdateProduct(product *Product) error
	// SetStatus writes status and isActive together in a single UPDATE so the
	// BLOCKED => inactive invariant holds in the same commit.
	SetStatus(id string, status ProductStatus, isActive bool, note string) error
	ArchiveProduct(id string, at time.Time) error
	GetProductByID(id string) (*Product, error)
	GetProductsByVendor(vendorID, tenantKey string) ([]*Product, error)
	GetProductsByTenant(tenantKey string, page, limit int32) ([]*Product, error)
	CountActiveByVendorProfile(vendorProfileID string) (int64, error)
}
