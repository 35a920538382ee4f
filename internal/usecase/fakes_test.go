package usecase

import (
	"context"
	"time"

	"github.com/vendora/marketplace-service/internal/domain"
)

// In-memory repositories backing the usecase tests. They implement the same
// contracts as the postgres repositories, including the single-UPDATE
// semantics of SetStatus and SetModerationState.

type fakeTenantRepo struct {
	tenants map[string]*domain.Tenant // by ID
	domains map[string]*domain.TenantDomain
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{
		tenants: make(map[string]*domain.Tenant),
		domains: make(map[string]*domain.TenantDomain),
	}
}

func (r *fakeTenantRepo) CreateTenant(tenant *domain.Tenant) error {
	cp := *tenant
	r.tenants[tenant.ID] = &cp
	return nil
}

func (r *fakeTenantRepo) UpdateTenant(tenant *domain.Tenant) error {
	if _, ok := r.tenants[tenant.ID]; !ok {
		return domain.ErrTenantNotFound
	}
	cp := *tenant
	r.tenants[tenant.ID] = &cp
	return nil
}

func (r *fakeTenantRepo) GetTenantByID(id string) (*domain.Tenant, error) {
	t, ok := r.tenants[id]
	if !ok {
		return nil, domain.ErrTenantNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTenantRepo) GetTenantByKey(key string) (*domain.Tenant, error) {
	for _, t := range r.tenants {
		if t.Key == key {
			cp := *t
			return &cp, nil
		}
	}
	return nil, domain.ErrTenantNotFound
}

func (r *fakeTenantRepo) GetTenants(page, limit int32) ([]*domain.Tenant, error) {
	out := make([]*domain.Tenant, 0, len(r.tenants))
	for _, t := range r.tenants {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTenantRepo) CountDomains(tenantID string) (int64, error) {
	var n int64
	for _, d := range r.domains {
		if d.TenantID == tenantID {
			n++
		}
	}
	return n, nil
}

func (r *fakeTenantRepo) AttachDomain(d *domain.TenantDomain) error {
	cp := *d
	r.domains[d.ID] = &cp
	return nil
}

func (r *fakeTenantRepo) DetachDomain(domainID string) error {
	delete(r.domains, domainID)
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*domain.VendorProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*domain.VendorProfile)}
}

func (r *fakeProfileRepo) UpsertVendorProfile(p *domain.VendorProfile) error {
	for _, existing := range r.profiles {
		if existing.UserID == p.UserID && existing.TenantKey == p.TenantKey {
			existing.DisplayName = p.DisplayName
			existing.AvatarURL = p.AvatarURL
			existing.BannerURL = p.BannerURL
			return nil
		}
	}
	cp := *p
	r.profiles[p.ID] = &cp
	return nil
}

func (r *fakeProfileRepo) UpdateVendorProfile(p *domain.VendorProfile) error {
	if _, ok := r.profiles[p.ID]; !ok {
		return domain.ErrVendorProfileNotFound
	}
	cp := *p
	r.profiles[p.ID] = &cp
	return nil
}

func (r *fakeProfileRepo) GetVendorProfileByID(id string) (*domain.VendorProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrVendorProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) GetVendorProfileByUser(userID, tenantKey string) (*domain.VendorProfile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID && p.TenantKey == tenantKey {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrVendorProfileNotFound
}

func (r *fakeProfileRepo) GetVendorProfileBySlug(slug, tenantKey string) (*domain.VendorProfile, error) {
	for _, p := range r.profiles {
		if p.Slug == slug && p.TenantKey == tenantKey {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrVendorProfileNotFound
}

func (r *fakeProfileRepo) GetVendorProfiles(tenantKey string, page, limit int32) ([]*domain.VendorProfile, error) {
	var out []*domain.VendorProfile
	for _, p := range r.profiles {
		if p.TenantKey == tenantKey {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProfileRepo) SetModerationState(id string, status domain.VendorStatus, isPublic *bool, note string) error {
	p, ok := r.profiles[id]
	if !ok {
		return domain.ErrVendorProfileNotFound
	}
	p.Status = status
	if isPublic != nil {
		p.IsPublic = *isPublic
	}
	p.ModerationNote = note
	return nil
}

func (r *fakeProfileRepo) UpdateCachedStats(id string, totalSales, totalRevenueCents, activeProducts int64) error {
	p, ok := r.profiles[id]
	if !ok {
		return domain.ErrVendorProfileNotFound
	}
	p.TotalSales = totalSales
	p.TotalRevenueCents = totalRevenueCents
	p.ActiveProductsCount = activeProducts
	return nil
}

type fakeProductRepo struct {
	products map[string]*domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*domain.Product)}
}

func (r *fakeProductRepo) CreateProduct(p *domain.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateProduct(p *domain.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) SetStatus(id string, status domain.ProductStatus, isActive bool, note string) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Status = status
	p.IsActive = isActive
	p.ModerationNote = note
	return nil
}

func (r *fakeProductRepo) ArchiveProduct(id string, at time.Time) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.ArchivedAt = &at
	p.IsActive = false
	return nil
}

func (r *fakeProductRepo) GetProductByID(id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetProductsByVendor(vendorID, tenantKey string) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range r.products {
		if p.VendorID == vendorID && p.TenantKey == tenantKey {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetProductsByTenant(tenantKey string, page, limit int32) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range r.products {
		if p.TenantKey == tenantKey && p.ArchivedAt == nil {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) CountActiveByVendorProfile(vendorProfileID string) (int64, error) {
	var n int64
	for _, p := range r.products {
		if p.VendorProfileID == vendorProfileID && p.IsActive && p.Status == domain.ProductActive {
			n++
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) GetUserByID(id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) SetUserBlocked(id string, blocked bool) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsBlocked = blocked
	return nil
}

type fakeOrderRepo struct {
	orders map[string]*domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *fakeOrderRepo) CreateOrder(o *domain.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetOrderByID(id string) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) GetOrdersByVendor(vendorID string, filters domain.OrderFilters, page, limit int32) ([]*domain.Order, int64, error) {
	var out []*domain.Order
	for _, o := range r.orders {
		if o.VendorID == vendorID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) GetOrdersByBuyer(buyerID string, page, limit int32) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.orders {
		if o.BuyerID == buyerID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) MarkPaid(id string, platformCents, vendorCents int64) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if o.Status != domain.OrderPending {
		return domain.ErrInvalidStatus
	}
	now := time.Now()
	o.Status = domain.OrderPaid
	o.PlatformEarningsCents = platformCents
	o.VendorEarningsCents = vendorCents
	o.PaidAt = &now
	return nil
}

func (r *fakeOrderRepo) MarkCanceled(id string) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.Status = domain.OrderCanceled
	return nil
}

func (r *fakeOrderRepo) SumPaidAmount(ctx context.Context, vendorID string) (int64, error) {
	var sum int64
	for _, o := range r.orders {
		if o.VendorID == vendorID && domain.IsPaidStatus(string(o.Status)) {
			sum += o.AmountCents
		}
	}
	return sum, nil
}

func (r *fakeOrderRepo) SumPaidVendorEarnings(ctx context.Context, vendorID string) (int64, error) {
	var sum int64
	for _, o := range r.orders {
		if o.VendorID == vendorID && domain.IsPaidStatus(string(o.Status)) {
			if o.VendorEarningsCents > 0 {
				sum += o.VendorEarningsCents
			} else {
				sum += domain.LegacyVendorEarnings(o.AmountCents)
			}
		}
	}
	return sum, nil
}

func (r *fakeOrderRepo) CountPaidOrders(ctx context.Context, vendorID string) (int64, error) {
	var n int64
	for _, o := range r.orders {
		if o.VendorID == vendorID && domain.IsPaidStatus(string(o.Status)) {
			n++
		}
	}
	return n, nil
}

type fakeTenantCache struct {
	store map[string]*domain.Tenant
	hits  int
}

func newFakeTenantCache() *fakeTenantCache {
	return &fakeTenantCache{store: make(map[string]*domain.Tenant)}
}

func (c *fakeTenantCache) Get(ctx context.Context, key string) (*domain.Tenant, bool) {
	t, ok := c.store[key]
	if ok {
		c.hits++
		cp := *t
		return &cp, true
	}
	return nil, false
}

func (c *fakeTenantCache) Set(ctx context.Context, tenant *domain.Tenant) {
	cp := *tenant
	c.store[tenant.Key] = &cp
}

func (c *fakeTenantCache) Invalidate(ctx context.Context, key string) {
	delete(c.store, key)
}
