// Package entity contains the core business objects of the project.
package entity

// Role represents the account type a user registers as.
type Role string

const (
	// RoleCustomer indicates a customer account that orders and reviews services.
	RoleCustomer Role = "customer"
	// RoleBusiness indicates a business account that provides services.
	RoleBusiness Role = "business"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleBusiness:
		return true
	default:
		return false
	}
}
