package models

import (
	"slices"
	"time"

	"gorm.io/datatypes"
)

// UserRole defines the roles an account can hold
type UserRole string

const (
	RoleCustomer   UserRole = "customer"
	RoleRestaurant UserRole = "restaurant"
	RoleDriver     UserRole = "driver"
)

// RegistrableRoles lists every role an account may acquire through registration
var RegistrableRoles = []UserRole{RoleCustomer, RoleDriver, RoleRestaurant}

// IsValid reports whether r is a known role
func (r UserRole) IsValid() bool {
	return slices.Contains(RegistrableRoles, r)
}

// Account is one identity per phone number. ActiveRole is nil while no session is open.
type Account struct {
	ID           string                        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name         string                        `json:"name" gorm:"not null"`
	Phone        string                        `json:"phone" gorm:"uniqueIndex;not null"`
	PasswordHash string                        `json:"-" gorm:"not null"`
	Roles        datatypes.JSONSlice[UserRole] `json:"roles" gorm:"not null"`
	ActiveRole   *UserRole                     `json:"active_role"`
	Profiles     datatypes.JSONType[Profiles]  `json:"-"`
	Version      int                           `json:"-" gorm:"not null;default:0"`
	CreatedAt    time.Time                     `json:"created_at"`
	UpdatedAt    time.Time                     `json:"updated_at"`
}

// HasRole reports whether the account holds role
func (a *Account) HasRole(role UserRole) bool {
	return slices.Contains(a.Roles, role)
}

// RoleList returns a copy of the account's roles
func (a *Account) RoleList() []UserRole {
	return slices.Clone([]UserRole(a.Roles))
}

// MissingRoles returns the requested roles the account does not hold yet, in request order
func (a *Account) MissingRoles(requested []UserRole) []UserRole {
	var missing []UserRole
	for _, r := range requested {
		if !a.HasRole(r) && !slices.Contains(missing, r) {
			missing = append(missing, r)
		}
	}
	return missing
}

// IsIdle reports whether no session is open for the account
func (a *Account) IsIdle() bool {
	return a.ActiveRole == nil
}

// UnionRoles appends to existing every role of added it does not contain
func UnionRoles(existing, added []UserRole) []UserRole {
	out := slices.Clone(existing)
	for _, r := range added {
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}
