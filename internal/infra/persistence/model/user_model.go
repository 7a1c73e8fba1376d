// Package model defines the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"

	"petclinic/internal/domain/entity"
)

// UserModel mirrors the 'users' table. Owner and vet accounts carry the
// matching profile id column; admin accounts leave both null.
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string     `gorm:"type:varchar(100);not null"`
	Username     string     `gorm:"type:varchar(100);unique;not null"`
	Email        string     `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Role         string     `gorm:"type:varchar(20);not null;index"`
	OwnerID      *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	VetID        *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToUserDomain maps a persistence model back to a pure domain entity.
func ToUserDomain(m *UserModel) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		OwnerID:      m.OwnerID,
		VetID:        m.VetID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromUserDomain maps a domain entity to its persistence model.
func FromUserDomain(u *entity.User) *UserModel {
	return &UserModel{
		ID:           u.ID,
		Name:         u.Name,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role.String(),
		OwnerID:      u.OwnerID,
		VetID:        u.VetID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
