package entity

// Role represents the type of account a user can have in the clinic.
type Role string

const (
	// RoleAdmin indicates a clinic administrator account.
	RoleAdmin Role = "ADMIN"
	// RoleOwner indicates a pet-owning customer account.
	RoleOwner Role = "OWNER"
	// RoleVet indicates a clinic staff account.
	RoleVet Role = "VET"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleVet:
		return true
	default:
		return false
	}
}

// ParseRole maps a raw role string onto the Role enum. It is the single place
// where external role representations are converted, so unknown strings never
// reach persistence.
func ParseRole(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
