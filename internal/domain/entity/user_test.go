package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Sanitized(t *testing.T) {
	profileID := uuid.New()
	user := &User{
		ID:           uuid.New(),
		Name:         "Rhaenyra Targaryen",
		Username:     "rhaenyra",
		Email:        "rhaenyra@dragonstone.com",
		PasswordHash: "$2a$10$secret",
		Role:         RoleOwner,
		OwnerID:      &profileID,
	}

	clean := user.Sanitized()

	require.NotNil(t, clean)
	assert.Empty(t, clean.PasswordHash)
	assert.Equal(t, user.ID, clean.ID)
	assert.Equal(t, user.OwnerID, clean.OwnerID)
	assert.NotSame(t, user, clean)
	assert.NotEmpty(t, user.PasswordHash, "the original must keep its hash")
}

func TestUser_Sanitized_Nil(t *testing.T) {
	var user *User

	assert.Nil(t, user.Sanitized())
}

func TestOwnerFromUser(t *testing.T) {
	profileID := uuid.New()
	user := &User{
		ID:           uuid.New(),
		Name:         "Rhaenyra Targaryen",
		Username:     "rhaenyra",
		Email:        "rhaenyra@dragonstone.com",
		PasswordHash: "$2a$10$secret",
		Role:         RoleOwner,
		OwnerID:      &profileID,
	}

	owner := OwnerFromUser(user)

	require.NotNil(t, owner)
	assert.Equal(t, user.ID, owner.ID)
	assert.Equal(t, user.Email, owner.Email)
	assert.Equal(t, RoleOwner, owner.Role)
	assert.Equal(t, &profileID, owner.OwnerID)

	assert.Nil(t, OwnerFromUser(nil))
}

func TestVetFromUser(t *testing.T) {
	profileID := uuid.New()
	user := &User{
		ID:       uuid.New(),
		Name:     "Gerardys",
		Username: "gerardys",
		Email:    "gerardys@dragonstone.com",
		Role:     RoleVet,
		VetID:    &profileID,
	}

	vet := VetFromUser(user)

	require.NotNil(t, vet)
	assert.Equal(t, user.ID, vet.ID)
	assert.Equal(t, RoleVet, vet.Role)
	assert.Equal(t, &profileID, vet.VetID)

	assert.Nil(t, VetFromUser(nil))
}
