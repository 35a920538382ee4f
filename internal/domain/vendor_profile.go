package domain

import "time"

type VendorStatus string

const (
	VendorPending  VendorStatus = "PENDING"
	VendorApproved VendorStatus = "APPROVED"
	VendorBlocked  VendorStatus = "BLOCKED"
)

func ParseVendorStatus(s string) (VendorStatus, error) {
	switch VendorStatus(s) {
	case VendorPending, VendorApproved, VendorBlocked:
		return VendorStatus(s), nil
	}
	return "", ErrInvalidStatus
}

// VendorProfile is the public, moderated identity of a vendor. At most one
// profile exists per (UserID, TenantKey). The stat fields are a denormalized
// cache; the order aggregation is the source of truth.
type VendorProfile struct {
	ID             string
	UserID         string
	TenantKey      string
	Status         VendorStatus
	IsPublic       bool
	ModerationNote string
	DisplayName    string
	Slug           string
	AvatarURL      string
	BannerURL      string

	TotalSales          int64
	TotalRevenueCents   int64
	ActiveProductsCount int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

type VendorProfileRepository interface {
	UpsertVendorProfile(profile *VendorProfile) error
	UpdateVendorProfile(profile *VendorProfile) error
	GetVendorProfileByID(id string) (*VendorProfile, error)
	GetVendorProfileByUser(userID, tenantKey string) (*VendorProfile, error)
	GetVendorProfileBySlug(slug, tenantKey string) (*VendorProfile, error)
	GetVendorProfiles(tenantKey string, page, limit int32) ([]*VendorProfile, error)
	SetModerationState(id string, status VendorStatus, isPublic *bool, note string) error
	UpdateCachedStats(id string, totalSales, totalRevenueCents, activeProducts int64) error
}
