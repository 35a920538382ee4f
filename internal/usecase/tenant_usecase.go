package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vendora/marketplace-service/internal/domain"
	tenantdto "github.com/vendora/marketplace-service/internal/usecase/dto/tenant"
)

type TenantUsecase interface {
	Resolve(ctx context.Context, tenantKey string) (*tenantdto.ResolvedTenant, error)
	CreateTenant(ctx context.Context, input *tenantdto.CreateTenantInput) (*domain.Tenant, error)
	UpdateTenantPlan(ctx context.Context, input *tenantdto.UpdateTenantPlanInput) (*domain.Tenant, error)
	UpdateTenantBranding(ctx context.Context, input *tenantdto.UpdateTenantBrandingInput) error
	AttachDomain(ctx context.Context, input *tenantdto.AttachDomainInput) (*domain.TenantDomain, error)
	DetachDomain(ctx context.Context, tenantID, domainID string) error
}

// TenantCache is the read-through cache in front of tenant resolution. Cache
// failures are logged and ignored; the repository stays authoritative.
type TenantCache interface {
	Get(ctx context.Context, key string) (*domain.Tenant, bool)
	Set(ctx context.Context, tenant *domain.Tenant)
	Invalidate(ctx context.Context, key string)
}

type DefaultTenantUsecase struct {
	TenantRepo domain.TenantRepository
	Cache      TenantCache
}

func NewDefaultTenantUsecase(tenantRepo domain.TenantRepository, cache TenantCache) *DefaultTenantUsecase {
	return &DefaultTenantUsecase{
		TenantRepo: tenantRepo,
		Cache:      cache,
	}
}

// Resolve maps a tenant key to tenant metadata plus capabilities. The literal
// "MARKETPLACE" key resolves to a synthetic tenant without touching storage.
func (uc *DefaultTenantUsecase) Resolve(ctx context.Context, tenantKey string) (*tenantdto.ResolvedTenant, error) {
	if tenantKey == domain.MarketplaceTenantKey {
		tenant := &domain.Tenant{
			Key:    domain.MarketplaceTenantKey,
			Mode:   domain.ModeMarketplace,
			Plan:   domain.PlanFree,
			Status: domain.TenantActive,
		}
		return &tenantdto.ResolvedTenant{
			Tenant:       tenant,
			Capabilities: domain.ComputeCapabilities(tenant.Mode, tenant.Plan),
			Virtual:      true,
		}, nil
	}

	if uc.Cache != nil {
		if tenant, ok := uc.Cache.Get(ctx, tenantKey); ok {
			return resolved(tenant), nil
		}
	}

	tenant, err := uc.TenantRepo.GetTenantByKey(tenantKey)
	if err != nil {
		return nil, fmt.Errorf("resolve tenant %q: %w", tenantKey, err)
	}

	// Legacy rows predate the mode column; treat them as white-label shops.
	if tenant.Mode == "" {
		tenant.Mode = domain.ModeWhiteLabel
	}

	if uc.Cache != nil {
		uc.Cache.Set(ctx, tenant)
	}

	return resolved(tenant), nil
}

func resolved(tenant *domain.Tenant) *tenantdto.ResolvedTenant {
	return &tenantdto.ResolvedTenant{
		Tenant:       tenant,
		Capabilities: domain.ComputeCapabilities(tenant.Mode, tenant.Plan),
	}
}

func (uc *DefaultTenantUsecase) CreateTenant(ctx context.Context, input *tenantdto.CreateTenantInput) (*domain.Tenant, error) {
	if input.Key == "" || input.Key == domain.MarketplaceTenantKey {
		return nil, fmt.Errorf("tenant key %q is not provisionable: %w", input.Key, domain.ErrInvalidStatus)
	}

	mode, err := domain.ParseTenantMode(input.Mode)
	if err != nil {
		return nil, fmt.Errorf("tenant mode %q: %w", input.Mode, err)
	}
	plan, err := domain.ParseTenantPlan(input.Plan)
	if err != nil {
		return nil, fmt.Errorf("tenant plan %q: %w", input.Plan, err)
	}

	tenant := &domain.Tenant{
		ID:        uuid.New().String(),
		Key:       input.Key,
		Name:      input.Name,
		Mode:      mode,
		Plan:      plan,
		Status:    domain.TenantActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uc.TenantRepo.CreateTenant(tenant); err != nil {
		return nil, fmt.Errorf("create tenant: %w", err)
	}

	slog.Info("tenant provisioned", "tenant_key", tenant.Key, "mode", tenant.Mode, "plan", tenant.Plan)
	return tenant, nil
}

// UpdateTenantPlan applies the downgrade guard: the change is rejected when
// the tenant's current domain count no longer fits the target plan.
func (uc *DefaultTenantUsecase) UpdateTenantPlan(ctx context.Context, input *tenantdto.UpdateTenantPlanInput) (*domain.Tenant, error) {
	plan, err := domain.ParseTenantPlan(input.Plan)
	if err != nil {
		return nil, fmt.Errorf("tenant plan %q: %w", input.Plan, err)
	}

	tenant, err := uc.TenantRepo.GetTenantByID(input.TenantID)
	if err != nil {
		return nil, fmt.Errorf("load tenant: %w", err)
	}

	domainCount, err := uc.TenantRepo.CountDomains(tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("count domains: %w", err)
	}
	if domainCount > int64(domain.DomainLimit(plan)) {
		return nil, fmt.Errorf("%d domains attached, plan %s allows %d: %w",
			domainCount, plan, domain.DomainLimit(plan), domain.ErrPlanDowngradeConflict)
	}

	tenant.Plan = plan
	tenant.UpdatedAt = time.Now()
	if err := uc.TenantRepo.UpdateTenant(tenant); err != nil {
		return nil, fmt.Errorf("update tenant: %w", err)
	}
	uc.invalidate(ctx, tenant.Key)

	slog.Info("tenant plan updated", "tenant_key", tenant.Key, "plan", plan)
	return tenant, nil
}

// UpdateTenantBranding rejects theme writes for plans whose resolved
// capability set has branding off.
func (uc *DefaultTenantUsecase) UpdateTenantBranding(ctx context.Context, input *tenantdto.UpdateTenantBrandingInput) error {
	tenant, err := uc.TenantRepo.GetTenantByID(input.TenantID)
	if err != nil {
		return fmt.Errorf("load tenant: %w", err)
	}

	caps := domain.ComputeCapabilities(tenant.Mode, tenant.Plan)
	if err := caps.Require(caps.Branding); err != nil {
		return fmt.Errorf("branding on plan %s: %w", tenant.Plan, err)
	}

	tenant.ThemeJSON = input.ThemeJSON
	tenant.UpdatedAt = time.Now()
	if err := uc.TenantRepo.UpdateTenant(tenant); err != nil {
		return fmt.Errorf("update tenant: %w", err)
	}
	uc.invalidate(ctx, tenant.Key)
	return nil
}

func (uc *DefaultTenantUsecase) AttachDomain(ctx context.Context, input *tenantdto.AttachDomainInput) (*domain.TenantDomain, error) {
	tenant, err := uc.TenantRepo.GetTenantByID(input.TenantID)
	if err != nil {
		return nil, fmt.Errorf("load tenant: %w", err)
	}

	caps := domain.ComputeCapabilities(tenant.Mode, tenant.Plan)
	if err := caps.Require(caps.CustomDomain); err != nil {
		return nil, fmt.Errorf("custom domains on plan %s: %w", tenant.Plan, err)
	}

	count, err := uc.TenantRepo.CountDomains(tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("count domains: %w", err)
	}
	if count >= int64(domain.DomainLimit(tenant.Plan)) {
		return nil, fmt.Errorf("domain limit for plan %s reached: %w", tenant.Plan, domain.ErrCapabilityDenied)
	}

	d := &domain.TenantDomain{
		ID:        uuid.New().String(),
		TenantID:  tenant.ID,
		Hostname:  input.Hostname,
		CreatedAt: time.Now(),
	}
	if err := uc.TenantRepo.AttachDomain(d); err != nil {
		return nil, fmt.Errorf("attach domain: %w", err)
	}
	uc.invalidate(ctx, tenant.Key)
	return d, nil
}

func (uc *DefaultTenantUsecase) DetachDomain(ctx context.Context, tenantID, domainID string) error {
	tenant, err := uc.TenantRepo.GetTenantByID(tenantID)
	if err != nil {
		return fmt.Errorf("load tenant: %w", err)
	}
	if err := uc.TenantRepo.DetachDomain(domainID); err != nil {
		return fmt.Errorf("detach domain: %w", err)
	}
	uc.invalidate(ctx, tenant.Key)
	return nil
}

func (uc *DefaultTenantUsecase) invalidate(ctx context.Context, key string) {
	if uc.Cache != nil {
		uc.Cache.Invalidate(ctx, key)
	}
}
