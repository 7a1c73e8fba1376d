package entity

import "github.com/google/uuid"

// Owner is the profile view of an OWNER-role user: the customer record the
// rest of the clinic sees. The paired User carries the credentials; the Owner
// view never exposes them.
type Owner struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Username string
	Role     Role
	OwnerID  *uuid.UUID
}

// OwnerFromUser maps an OWNER-role user onto its profile view,
// stripping the password hash.
func OwnerFromUser(u *User) *Owner {
	if u == nil {
		return nil
	}

	return &Owner{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Username: u.Username,
		Role:     u.Role,
		OwnerID:  u.OwnerID,
	}
}

// Vet is the profile view of a VET-role user, structurally symmetric to Owner.
type Vet struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Username string
	Role     Role
	VetID    *uuid.UUID
}

// VetFromUser maps a VET-role user onto its profile view.
func VetFromUser(u *User) *Vet {
	if u == nil {
		return nil
	}

	return &Vet{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Username: u.Username,
		Role:     u.Role,
		VetID:    u.VetID,
	}
}
