package entity

// PetType represents the closed set of species the clinic treats.
type PetType string

const (
	PetTypeCat     PetType = "CAT"
	PetTypeDog     PetType = "DOG"
	PetTypeBird    PetType = "BIRD"
	PetTypeFish    PetType = "FISH"
	PetTypeRabbit  PetType = "RABBIT"
	PetTypeReptile PetType = "REPTILE"
)

// String returns the string representation of the PetType.
func (t PetType) String() string {
	return string(t)
}

// IsValid checks if the PetType is a valid value.
func (t PetType) IsValid() bool {
	switch t {
	case PetTypeCat, PetTypeDog, PetTypeBird, PetTypeFish, PetTypeRabbit, PetTypeReptile:
		return true
	default:
		return false
	}
}

// ParsePetType maps a raw species string onto the PetType enum.
func ParsePetType(s string) (PetType, bool) {
	petType := PetType(s)

	return petType, petType.IsValid()
}
