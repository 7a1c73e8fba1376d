package validation

import (
	"testing"

	domainerrors "petclinic/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	engine, err := New()
	require.NoError(t, err)

	return engine
}

func validAccount() *AccountPayload {
	return &AccountPayload{
		Name:     "Rhaenyra Targaryen",
		Email:    "rhaenyra@dragonstone.com",
		Username: "rhaenyra",
		Password: "Dracarys1!",
	}
}

func violationFields(t *testing.T, err error) map[string]string {
	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))

	fields := make(map[string]string)
	for _, v := range validationErr.Violations() {
		fields[v.Field] = v.Rule
	}

	return fields
}

func TestEngine_ValidateOwner_Valid(t *testing.T) {
	engine := newTestEngine(t)

	assert.NoError(t, engine.ValidateOwner(validAccount()))
}

func TestEngine_ValidateOwner_BlankFields(t *testing.T) {
	engine := newTestEngine(t)

	payload := validAccount()
	payload.Name = "   "

	err := engine.ValidateOwner(payload)
	require.Error(t, err)

	fields := violationFields(t, err)
	assert.Equal(t, "notblank", fields["name"])
}

func TestEngine_ValidateOwner_EmailRules(t *testing.T) {
	engine := newTestEngine(t)

	cases := []struct {
		name  string
		email string
	}{
		{"missing at", "rhaenyra.dragonstone.com"},
		{"no domain dot", "rhaenyra@dragonstone"},
		{"dot first", "rhaenyra@.com"},
		{"dot last", "rhaenyra@dragonstone."},
		{"blank", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validAccount()
			payload.Email = tc.email

			err := engine.ValidateOwner(payload)
			require.Error(t, err)

			fields := violationFields(t, err)
			assert.Contains(t, fields, "email")
		})
	}
}

func TestEngine_ValidateOwner_UsernameTooShort(t *testing.T) {
	engine := newTestEngine(t)

	payload := validAccount()
	payload.Username = "rhae"

	err := engine.ValidateOwner(payload)
	require.Error(t, err)

	fields := violationFields(t, err)
	assert.Equal(t, "min", fields["username"])
}

func TestEngine_ValidateOwner_PasswordPolicy(t *testing.T) {
	engine := newTestEngine(t)

	weak := []struct {
		name     string
		password string
	}{
		{"too short", "Dr1!"},
		{"no uppercase", "dracarys1!"},
		{"no lowercase", "DRACARYS1!"},
		{"no digit", "Dracarys!!"},
		{"no symbol", "Dracarys11"},
	}

	for _, tc := range weak {
		t.Run(tc.name, func(t *testing.T) {
			payload := validAccount()
			payload.Password = tc.password

			err := engine.ValidateOwner(payload)
			require.Error(t, err)

			fields := violationFields(t, err)
			assert.Equal(t, "password", fields["password"])
		})
	}
}

func TestEngine_ValidateOwner_CollectsAllViolations(t *testing.T) {
	engine := newTestEngine(t)

	err := engine.ValidateOwner(&AccountPayload{})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "owner", validationErr.Entity())
	assert.Equal(t, "OWNER_VALIDATION_FAILED", validationErr.ErrorCode())
	assert.GreaterOrEqual(t, len(validationErr.Violations()), 4)
}

func TestEngine_ValidateUser_Role(t *testing.T) {
	engine := newTestEngine(t)

	payload := &UserPayload{
		AccountPayload: AccountPayload{
			Name:     "Clinic Admin",
			Email:    "admin@petclinic.com",
			Username: "clinicadmin",
			Password: "Admin123!",
		},
		Role: "ADMIN",
	}
	assert.NoError(t, engine.ValidateUser(payload))

	payload.Role = "SUPERADMIN"
	err := engine.ValidateUser(payload)
	require.Error(t, err)

	fields := violationFields(t, err)
	assert.Equal(t, "role", fields["role"])
}

func TestEngine_ValidatePet(t *testing.T) {
	engine := newTestEngine(t)

	valid := &PetPayload{
		Name:    "Syrax",
		Breed:   "Golden",
		Color:   "Yellow",
		Age:     4,
		Weight:  12.5,
		Type:    "DOG",
		OwnerID: uuid.New().String(),
	}
	assert.NoError(t, engine.ValidatePet(valid))

	t.Run("negative age", func(t *testing.T) {
		payload := *valid
		payload.Age = -1

		err := engine.ValidatePet(&payload)
		require.Error(t, err)
		assert.Equal(t, "gte", violationFields(t, err)["age"])
	})

	t.Run("unknown species", func(t *testing.T) {
		payload := *valid
		payload.Type = "DRAGON"

		err := engine.ValidatePet(&payload)
		require.Error(t, err)
		assert.Equal(t, "pettype", violationFields(t, err)["type"])
	})

	t.Run("blank breed", func(t *testing.T) {
		payload := *valid
		payload.Breed = ""

		err := engine.ValidatePet(&payload)
		require.Error(t, err)
		assert.Equal(t, "notblank", violationFields(t, err)["breed"])
	})
}
