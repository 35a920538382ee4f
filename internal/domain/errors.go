package domain

import "errors"

var (
	ErrTenantNotFound        = errors.New("tenant not found")
	ErrProductNotFound       = errors.New("product not found")
	ErrVendorProfileNotFound = errors.New("vendor profile not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrPayoutNotFound        = errors.New("payout not found")

	ErrInvalidStatus         = errors.New("invalid status value")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrAmountMismatch        = errors.New("order amount does not match product price")
	ErrCapabilityDenied      = errors.New("capability denied for tenant")
	ErrInsufficientBalance   = errors.New("payout amount exceeds available balance")
	ErrPlanDowngradeConflict = errors.New("plan change conflicts with existing resources")
)
