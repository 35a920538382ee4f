package tenantdto

type CreateTenantInput struct {
	Key  string
	Name string
	Mode string
	Plan string
}

type UpdateTenantPlanInput struct {
	TenantID string
	Plan     string
}

type UpdateTenantBrandingInput struct {
	TenantID  string
	ThemeJSON string
}

type AttachDomainInput struct {
	TenantID string
	Hostname string
}
