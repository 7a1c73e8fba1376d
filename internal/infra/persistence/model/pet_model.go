package model

import (
	"time"

	"github.com/google/uuid"

	"petclinic/internal/domain/entity"
)

// PetModel mirrors the 'pets' table. OwnerID references the owner profile id
// on the users table, and the name+breed+owner triple is the natural key.
type PetModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_pets_natural_key"`
	Breed     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_pets_natural_key"`
	Color     string    `gorm:"type:varchar(50);not null"`
	Age       int       `gorm:"not null"`
	Weight    float64   `gorm:"not null"`
	Type      string    `gorm:"type:varchar(20);not null"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_pets_natural_key;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PetModel) TableName() string {
	return "pets"
}

// ToPetDomain maps a persistence model back to a pure domain entity.
func ToPetDomain(m *PetModel) *entity.Pet {
	return &entity.Pet{
		ID:        m.ID,
		Name:      m.Name,
		Breed:     m.Breed,
		Color:     m.Color,
		Age:       m.Age,
		Weight:    m.Weight,
		Type:      entity.PetType(m.Type),
		OwnerID:   m.OwnerID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromPetDomain maps a domain entity to its persistence model.
func FromPetDomain(p *entity.Pet) *PetModel {
	return &PetModel{
		ID:        p.ID,
		Name:      p.Name,
		Breed:     p.Breed,
		Color:     p.Color,
		Age:       p.Age,
		Weight:    p.Weight,
		Type:      p.Type.String(),
		OwnerID:   p.OwnerID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
