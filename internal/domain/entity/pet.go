package entity

import (
	"time"

	"github.com/google/uuid"
)

// Pet is an animal record owned by exactly one owner-linked user. OwnerID
// holds the owner profile identifier carried on the paired User record.
type Pet struct {
	ID        uuid.UUID
	Name      string
	Breed     string
	Color     string
	Age       int
	Weight    float64
	Type      PetType
	OwnerID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
