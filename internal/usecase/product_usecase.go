package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vendora/marketplace-service/internal/domain"
	"github.com/vendora/marketplace-service/internal/infrastructure/metrics"
	productdto "github.com/vendora/marketplace-service/internal/usecase/dto/product"
)

type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *productdto.CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, input *productdto.UpdateProductInput) (*domain.Product, error)
	ArchiveProduct(ctx context.Context, productID, vendorID string) error
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	ListPublicProducts(ctx context.Context, tenantKey string, page, limit int32) ([]*domain.Product, error)
	ListVendorProducts(ctx context.Context, vendorID, tenantKey string) ([]*domain.Product, error)
	InspectVisibility(ctx context.Context, productID string) (*productdto.ProductView, error)
}

type DefaultProductUsecase struct {
	ProductRepo   domain.ProductRepository
	ProfileRepo   domain.VendorProfileRepository
	UserRepo      domain.UserRepository
	TenantUsecase TenantUsecase
	Metrics       *metrics.MarketplaceMetrics
}

func NewDefaultProductUsecase(
	productRepo domain.ProductRepository,
	profileRepo domain.VendorProfileRepository,
	userRepo domain.UserRepository,
	tenantUsecase TenantUsecase,
	m *metrics.MarketplaceMetrics,
) *DefaultProductUsecase {
	return &DefaultProductUsecase{
		ProductRepo:   productRepo,
		ProfileRepo:   profileRepo,
		UserRepo:      userRepo,
		TenantUsecase: tenantUsecase,
		Metrics:       m,
	}
}

// CreateProduct is capability-gated: selling requires MarketplaceSell on the
// marketplace tenant and WhiteLabelStore on a white-label shop. New products
// start as inactive drafts.
func (uc *DefaultProductUsecase) CreateProduct(ctx context.Context, input *productdto.CreateProductInput) (*domain.Product, error) {
	if input.PriceCents < domain.MinPriceCents {
		return nil, fmt.Errorf("price %d below minimum %d: %w", input.PriceCents, domain.MinPriceCents, domain.ErrInvalidAmount)
	}

	resolved, err := uc.TenantUsecase.Resolve(ctx, input.TenantKey)
	if err != nil {
		return nil, err
	}
	caps := resolved.Capabilities
	sellAllowed := caps.MarketplaceSell
	if resolved.Tenant.Mode == domain.ModeWhiteLabel {
		sellAllowed = caps.WhiteLabelStore
	}
	if err := caps.Require(sellAllowed); err != nil {
		return nil, fmt.Errorf("selling on tenant %s: %w", input.TenantKey, err)
	}

	profile, err := uc.ProfileRepo.GetVendorProfileByUser(input.VendorID, input.TenantKey)
	if err != nil {
		return nil, fmt.Errorf("vendor profile for %s: %w", input.VendorID, err)
	}

	product := &domain.Product{
		ID:              uuid.New().String(),
		VendorID:        input.VendorID,
		VendorProfileID: profile.ID,
		TenantKey:       input.TenantKey,
		Title:           input.Title,
		Description:     input.Description,
		Slug:            input.Slug,
		PriceCents:      input.PriceCents,
		FileKey:         input.FileKey,
		IsActive:        false,
		Status:          domain.ProductDraft,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := uc.ProductRepo.CreateProduct(product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	slog.Info("product created", "product_id", product.ID, "vendor_id", product.VendorID, "tenant_key", product.TenantKey)
	return product, nil
}

func (uc *DefaultProductUsecase) UpdateProduct(ctx context.Context, input *productdto.UpdateProductInput) (*domain.Product, error) {
	if input.PriceCents < domain.MinPriceCents {
		return nil, fmt.Errorf("price %d below minimum %d: %w", input.PriceCents, domain.MinPriceCents, domain.ErrInvalidAmount)
	}

	product, err := uc.ProductRepo.GetProductByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product.VendorID != input.VendorID {
		return nil, domain.ErrProductNotFound
	}

	product.Title = input.Title
	product.Description = input.Description
	product.PriceCents = input.PriceCents
	product.UpdatedAt = time.Now()
	if err := uc.ProductRepo.UpdateProduct(product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

// ArchiveProduct soft-deletes; paid orders keep referencing the row.
func (uc *DefaultProductUsecase) ArchiveProduct(ctx context.Context, productID, vendorID string) error {
	product, err := uc.ProductRepo.GetProductByID(productID)
	if err != nil {
		return err
	}
	if product.VendorID != vendorID {
		return domain.ErrProductNotFound
	}
	return uc.ProductRepo.ArchiveProduct(productID, time.Now())
}

func (uc *DefaultProductUsecase) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	return uc.ProductRepo.GetProductByID(id)
}

// ListPublicProducts filters a tenant's catalog through the visibility
// evaluator. Denial reasons feed the visibility metrics.
func (uc *DefaultProductUsecase) ListPublicProducts(ctx context.Context, tenantKey string, page, limit int32) ([]*domain.Product, error) {
	resolved, err := uc.TenantUsecase.Resolve(ctx, tenantKey)
	if err != nil {
		return nil, err
	}

	products, err := uc.ProductRepo.GetProductsByTenant(tenantKey, page, limit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	visible := make([]*domain.Product, 0, len(products))
	for _, product := range products {
		v, err := uc.evaluate(ctx, product, resolved.Tenant.Mode, resolved.Capabilities)
		if err != nil {
			return nil, err
		}
		if v.Visible {
			visible = append(visible, product)
			continue
		}
		if uc.Metrics != nil {
			for _, reason := range v.Reasons {
				uc.Metrics.VisibilityDenialsTotal.WithLabelValues(tenantKey, reason).Inc()
			}
		}
	}
	return visible, nil
}

func (uc *DefaultProductUsecase) ListVendorProducts(ctx context.Context, vendorID, tenantKey string) ([]*domain.Product, error) {
	return uc.ProductRepo.GetProductsByVendor(vendorID, tenantKey)
}

// InspectVisibility returns the full decision for one product, for the admin
// debugging view.
func (uc *DefaultProductUsecase) InspectVisibility(ctx context.Context, productID string) (*productdto.ProductView, error) {
	product, err := uc.ProductRepo.GetProductByID(productID)
	if err != nil {
		return nil, err
	}

	resolved, err := uc.TenantUsecase.Resolve(ctx, product.TenantKey)
	if err != nil {
		return nil, err
	}

	v, err := uc.evaluate(ctx, product, resolved.Tenant.Mode, resolved.Capabilities)
	if err != nil {
		return nil, err
	}
	return &productdto.ProductView{
		Product: product,
		Visible: v.Visible,
		Reasons: v.Reasons,
	}, nil
}

func (uc *DefaultProductUsecase) evaluate(ctx context.Context, product *domain.Product, mode domain.TenantMode, caps domain.Capabilities) (domain.Visibility, error) {
	var profile *domain.VendorProfile
	if product.VendorProfileID != "" {
		p, err := uc.ProfileRepo.GetVendorProfileByID(product.VendorProfileID)
		if err == nil {
			profile = p
		}
	}

	owner, err := uc.UserRepo.GetUserByID(product.VendorID)
	if err != nil {
		return domain.Visibility{}, fmt.Errorf("load product owner: %w", err)
	}

	return domain.EvaluateVisibility(product, profile, owner, domain.VisibilityContext{
		Mode:         mode,
		Capabilities: caps,
	}), nil
}
