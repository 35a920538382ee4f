package domain

import "time"

type TenantMode string

const (
	ModeWhiteLabel  TenantMode = "WHITE_LABEL"
	ModeMarketplace TenantMode = "MARKETPLACE"
)

type TenantPlan string

const (
	PlanFree       TenantPlan = "FREE"
	PlanPro        TenantPlan = "PRO"
	PlanEnterprise TenantPlan = "ENTERPRISE"
)

type TenantStatus string

const (
	TenantActive  TenantStatus = "ACTIVE"
	TenantBlocked TenantStatus = "BLOCKED"
)

// MarketplaceTenantKey is the reserved key of the shared virtual tenant.
// It is never backed by a stored row.
const MarketplaceTenantKey = "MARKETPLACE"

type Tenant struct {
	ID        string
	Key       string
	Mode      TenantMode
	Plan      TenantPlan
	Status    TenantStatus
	Name      string
	ThemeJSON string
	Domains   []TenantDomain
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TenantDomain struct {
	ID        string
	TenantID  string
	Hostname  string
	Verified  bool
	CreatedAt time.Time
}

// DomainLimit returns how many custom domains a plan may attach.
func DomainLimit(plan TenantPlan) int {
	switch plan {
	case PlanPro:
		return 1
	case PlanEnterprise:
		return 10
	default:
		return 0
	}
}

func ParseTenantMode(s string) (TenantMode, error) {
	switch TenantMode(s) {
	case ModeWhiteLabel, ModeMarketplace:
		return TenantMode(s), nil
	}
	return "", ErrInvalidStatus
}

func ParseTenantPlan(s string) (TenantPlan, error) {
	switch TenantPlan(s) {
	case PlanFree, PlanPro, PlanEnterprise:
		return TenantPlan(s), nil
	}
	return "", ErrInvalidStatus
}

type TenantRepository interface {
	CreateTenant(tenant *Tenant) error
	UpdateTenant(tenant *Tenant) error
	GetTenantByID(id string) (*Tenant, error)
	GetTenantByKey(key string) (*Tenant, error)
	GetTenants(page, limit int32) ([]*Tenant, error)
	CountDomains(tenantID string) (int64, error)
	AttachDomain(d *TenantDomain) error
	DetachDomain(domainID string) error
}
