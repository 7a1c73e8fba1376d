package impl

import (
	"io"
	"log/slog"

	"petclinic/internal/domain/entity"
	"petclinic/internal/domain/validation"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestValidator() *validation.Engine {
	engine, err := validation.New()
	if err != nil {
		panic(err)
	}

	return engine
}

func newOwnerUser() *entity.User {
	profileID := uuid.New()

	return &entity.User{
		ID:           uuid.New(),
		Name:         "Rhaenyra Targaryen",
		Username:     "rhaenyra",
		Email:        "rhaenyra@dragonstone.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleOwner,
		OwnerID:      &profileID,
	}
}

func newVetUser() *entity.User {
	profileID := uuid.New()

	return &entity.User{
		ID:           uuid.New(),
		Name:         "Maester Gerardys",
		Username:     "gerardys",
		Email:        "gerardys@dragonstone.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleVet,
		VetID:        &profileID,
	}
}
