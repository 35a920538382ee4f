package productdto

import "github.com/vendora/marketplace-service/internal/domain"

// ProductView pairs a product with its visibility decision for admin
// debugging surfaces; Reasons is rendered verbatim.
type ProductView struct {
	Product *domain.Product
	Visible bool
	Reasons []string
}
