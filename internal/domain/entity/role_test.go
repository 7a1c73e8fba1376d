package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("OWNER")
	assert.True(t, ok)
	assert.Equal(t, RoleOwner, role)

	_, ok = ParseRole("owner")
	assert.False(t, ok, "role parsing is case sensitive")

	_, ok = ParseRole("SUPERADMIN")
	assert.False(t, ok)

	_, ok = ParseRole("")
	assert.False(t, ok)
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleOwner.IsValid())
	assert.True(t, RoleVet.IsValid())
	assert.False(t, Role("GUEST").IsValid())
}

func TestParsePetType(t *testing.T) {
	for _, raw := range []string{"CAT", "DOG", "BIRD", "FISH", "RABBIT", "REPTILE"} {
		petType, ok := ParsePetType(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, raw, petType.String())
	}

	_, ok := ParsePetType("DRAGON")
	assert.False(t, ok)
}
