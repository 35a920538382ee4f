package domain

import "time"

type UserRole string

const (
	RoleBuyer  UserRole = "BUYER"
	RoleVendor UserRole = "VENDOR"
	RoleAdmin  UserRole = "ADMIN"
)

type User struct {
	ID        string
	Email     string
	Role      UserRole
	IsBlocked bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserRepository interface {
	GetUserByID(id string) (*User, error)
	SetUserBlocked(id string, blocked bool) error
}
