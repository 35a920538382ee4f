package tenantdto

import "github.com/vendora/marketplace-service/internal/domain"

// ResolvedTenant pairs a tenant with its computed capability set. The
// MARKETPLACE virtual tenant is synthesized, not loaded.
type ResolvedTenant struct {
	Tenant       *domain.Tenant
	Capabilities domain.Capabilities
	Virtual      bool
}
